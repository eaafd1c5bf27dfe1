package grid

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirNextSection
	DirPrevSection
)

// Step returns the coordinate one move away from p.
//
// Left/Right stay inside p's section; NextSection/PrevSection land on box 0
// of the neighbouring section. Moves past a boundary report false.
func Step(sections []Section, p Pos, dir MoveDir) (Pos, bool) {
	if !Contains(sections, p) {
		return p, false
	}

	var next Pos
	switch dir {
	case DirLeft:
		next = Pos{Section: p.Section, Box: p.Box - 1}
	case DirRight:
		next = Pos{Section: p.Section, Box: p.Box + 1}
	case DirNextSection:
		next = Pos{Section: p.Section + 1}
	case DirPrevSection:
		next = Pos{Section: p.Section - 1}
	default:
		return p, false
	}

	if !Contains(sections, next) {
		return p, false
	}
	return next, true
}

// IsLastBox reports whether p addresses the trailing box of its section.
func IsLastBox(sections []Section, p Pos) bool {
	if !Contains(sections, p) {
		return false
	}
	return p.Box == len(sections[p.Section].Boxes)-1
}
