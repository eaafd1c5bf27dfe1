package grid

// Op identifies the operation that produced a Change.
type Op uint8

const (
	OpInsertSection Op = iota
	OpBreakSection
	OpAddBox
	OpDeleteBox
	OpRemoveEmptyBox
	OpMultiCommit
	OpSetChar
	OpSetFurigana
)

var opNames = [...]string{
	OpInsertSection:  "insert-section",
	OpBreakSection:   "break-section",
	OpAddBox:         "add-box",
	OpDeleteBox:      "delete-box",
	OpRemoveEmptyBox: "remove-empty-box",
	OpMultiCommit:    "multi-commit",
	OpSetChar:        "set-char",
	OpSetFurigana:    "set-furigana",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Change is the result of one grid operation.
//
// Sections always holds a valid grid: the new one when Applied, the input
// otherwise. Focus is the coordinate the operation asks the host to focus;
// it is meaningful only when HasFocus is set.
type Change struct {
	Op       Op
	Applied  bool
	Sections []Section
	Focus    Pos
	HasFocus bool
}

func declined(op Op, sections []Section) Change {
	return Change{Op: op, Sections: sections}
}

func applied(op Op, sections []Section, focus Pos) Change {
	return Change{Op: op, Applied: true, Sections: sections, Focus: focus, HasFocus: true}
}
