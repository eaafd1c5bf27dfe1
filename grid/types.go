package grid

// Pos addresses a box by (section, box) index.
type Pos struct {
	Section int
	Box     int
}

// CellKind selects one of the two editable slots of a box.
type CellKind uint8

const (
	CellChar CellKind = iota
	CellFurigana
)

func (k CellKind) String() string {
	if k == CellFurigana {
		return "furigana"
	}
	return "char"
}

// Placement is the side of a reference section a new section is inserted on.
type Placement uint8

const (
	After Placement = iota
	Before
)

// Alignment controls horizontal placement of rendered lines.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Valid reports whether a is one of the known alignments.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	default:
		return false
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Contains reports whether p addresses an existing box.
func Contains(sections []Section, p Pos) bool {
	if p.Section < 0 || p.Section >= len(sections) {
		return false
	}
	return p.Box >= 0 && p.Box < len(sections[p.Section].Boxes)
}

// ClampPos clamps p into the bounds of sections.
//
// The returned Pos always satisfies 0 <= Section < len(sections) and
// 0 <= Box < len(boxes), treating empty inputs as a single empty box.
func ClampPos(sections []Section, p Pos) Pos {
	if len(sections) == 0 {
		return Pos{}
	}
	s := clampInt(p.Section, 0, len(sections)-1)
	b := clampInt(p.Box, 0, len(sections[s].Boxes)-1)
	return Pos{Section: s, Box: b}
}
