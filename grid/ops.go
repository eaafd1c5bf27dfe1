package grid

import "github.com/iw2rmb/genko/internal/grapheme"

// InsertSection inserts a section holding one empty box next to the
// reference section and focuses its box.
func InsertSection(sections []Section, ref int, where Placement) Change {
	if ref < 0 || ref >= len(sections) {
		return declined(OpInsertSection, sections)
	}
	at := ref + 1
	if where == Before {
		at = ref
	}

	out := make([]Section, 0, len(sections)+1)
	out = append(out, sections[:at]...)
	out = append(out, NewSection())
	out = append(out, sections[at:]...)
	return applied(OpInsertSection, out, Pos{Section: at})
}

// BreakSection splits a section before box b. Boxes [0, b) stay in place and
// boxes [b, end) become a new section right after it.
//
// Splitting before the first box is declined, as is any split that would
// leave an empty section.
func BreakSection(sections []Section, s, b int) Change {
	if !Contains(sections, Pos{Section: s, Box: b}) || b == 0 {
		return declined(OpBreakSection, sections)
	}
	src := sections[s]

	head := Section{ID: src.ID, Boxes: cloneBoxes(src.Boxes[:b])}
	tail := Section{ID: NewID(), Boxes: cloneBoxes(src.Boxes[b:])}

	out := make([]Section, 0, len(sections)+1)
	out = append(out, sections[:s]...)
	out = append(out, head, tail)
	out = append(out, sections[s+1:]...)
	return applied(OpBreakSection, out, Pos{Section: s + 1})
}

// AddBox appends an empty box to section s and focuses it.
func AddBox(sections []Section, s int) Change {
	if s < 0 || s >= len(sections) {
		return declined(OpAddBox, sections)
	}
	src := sections[s]
	boxes := make([]Box, len(src.Boxes), len(src.Boxes)+1)
	copy(boxes, src.Boxes)
	boxes = append(boxes, Box{})

	out := cloneSections(sections)
	out[s] = Section{ID: src.ID, Boxes: boxes}
	return applied(OpAddBox, out, Pos{Section: s, Box: len(boxes) - 1})
}

// DeleteBox removes box b of section s regardless of its content.
//
// Deleting the sole box of a section removes the section and focuses the
// first box of the preceding one. The last remaining box of the last
// remaining section is never deleted.
func DeleteBox(sections []Section, s, b int) Change {
	if !Contains(sections, Pos{Section: s, Box: b}) {
		return declined(OpDeleteBox, sections)
	}
	src := sections[s]

	if len(src.Boxes) == 1 {
		if len(sections) == 1 {
			return declined(OpDeleteBox, sections)
		}
		out := make([]Section, 0, len(sections)-1)
		out = append(out, sections[:s]...)
		out = append(out, sections[s+1:]...)
		return applied(OpDeleteBox, out, Pos{Section: max(0, s-1)})
	}

	boxes := make([]Box, 0, len(src.Boxes)-1)
	boxes = append(boxes, src.Boxes[:b]...)
	boxes = append(boxes, src.Boxes[b+1:]...)

	out := cloneSections(sections)
	out[s] = Section{ID: src.ID, Boxes: boxes}
	return applied(OpDeleteBox, out, Pos{Section: s, Box: max(0, b-1)})
}

// RemoveEmptyBox pops the trailing box of section s when it is blank and the
// section keeps at least one box. Anything else is declined.
func RemoveEmptyBox(sections []Section, s, b int) Change {
	if !Contains(sections, Pos{Section: s, Box: b}) {
		return declined(OpRemoveEmptyBox, sections)
	}
	src := sections[s]
	last := len(src.Boxes) - 1
	if b != last || len(src.Boxes) <= 1 || !src.Boxes[b].IsEmpty() {
		return declined(OpRemoveEmptyBox, sections)
	}

	out := cloneSections(sections)
	out[s] = Section{ID: src.ID, Boxes: cloneBoxes(src.Boxes[:last])}
	return applied(OpRemoveEmptyBox, out, Pos{Section: s, Box: b - 1})
}

// MultiCommit inserts one box per character at index at of section s,
// pushing the boxes from at onward to the right. Focus lands on the box
// right after the inserted run when that box exists.
func MultiCommit(sections []Section, s, at int, chars []string) Change {
	if s < 0 || s >= len(sections) || len(chars) == 0 {
		return declined(OpMultiCommit, sections)
	}
	src := sections[s]
	at = clampInt(at, 0, len(src.Boxes))

	boxes := make([]Box, 0, len(src.Boxes)+len(chars))
	boxes = append(boxes, src.Boxes[:at]...)
	for _, c := range chars {
		boxes = append(boxes, Box{Char: grapheme.First(c)})
	}
	boxes = append(boxes, src.Boxes[at:]...)

	out := cloneSections(sections)
	out[s] = Section{ID: src.ID, Boxes: boxes}

	ch := Change{Op: OpMultiCommit, Applied: true, Sections: out}
	if next := at + len(chars); next < len(boxes) {
		ch.Focus = Pos{Section: s, Box: next}
		ch.HasFocus = true
	}
	return ch
}

// SetChar stores the first grapheme of char in the box at p.
func SetChar(sections []Section, p Pos, char string) Change {
	if !Contains(sections, p) {
		return declined(OpSetChar, sections)
	}
	char = grapheme.First(char)
	return setBox(OpSetChar, sections, p, func(b Box) Box {
		b.Char = char
		return b
	})
}

// SetFurigana stores the furigana reading of the box at p.
func SetFurigana(sections []Section, p Pos, furigana string) Change {
	if !Contains(sections, p) {
		return declined(OpSetFurigana, sections)
	}
	return setBox(OpSetFurigana, sections, p, func(b Box) Box {
		b.Furigana = furigana
		return b
	})
}

func setBox(op Op, sections []Section, p Pos, edit func(Box) Box) Change {
	src := sections[p.Section]
	next := edit(src.Boxes[p.Box])
	if next == src.Boxes[p.Box] {
		return declined(op, sections)
	}
	boxes := cloneBoxes(src.Boxes)
	boxes[p.Box] = next

	out := cloneSections(sections)
	out[p.Section] = Section{ID: src.ID, Boxes: boxes}
	return Change{Op: op, Applied: true, Sections: out}
}
