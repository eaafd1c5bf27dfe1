package grid

import (
	"encoding/json"

	"github.com/iw2rmb/genko/internal/grapheme"
)

// Normalize repairs sections so they satisfy the grid invariants: at least
// one section, at least one box per section, single-grapheme characters and
// non-empty section ids. The input is not modified.
func Normalize(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		boxes := make([]Box, 0, len(s.Boxes))
		for _, b := range s.Boxes {
			b.Char = grapheme.First(b.Char)
			boxes = append(boxes, b)
		}
		if len(boxes) == 0 {
			boxes = append(boxes, Box{})
		}
		id := s.ID
		if id == "" {
			id = NewID()
		}
		out = append(out, Section{ID: id, Boxes: boxes})
	}
	if len(out) == 0 {
		out = append(out, NewSection())
	}
	return out
}

// Valid reports whether sections already satisfy the grid invariants.
func Valid(sections []Section) bool {
	if len(sections) == 0 {
		return false
	}
	for _, s := range sections {
		if len(s.Boxes) == 0 {
			return false
		}
		for _, b := range s.Boxes {
			if grapheme.Count(b.Char) > 1 {
				return false
			}
		}
	}
	return true
}

// UnmarshalJSON decodes an item and repairs it with Normalize. Missing
// layout fields fall back to the NewItem defaults.
func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	def := NewItem()
	def.ID = ""
	def.Sections = nil
	p := plain(def)
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*it = Item(p)
	if it.ID == "" {
		it.ID = NewID()
	}
	if it.BoxSizeMm <= 0 {
		it.BoxSizeMm = DefaultBoxSizeMm
	}
	if !it.Alignment.Valid() {
		it.Alignment = AlignLeft
	}
	it.Sections = Normalize(it.Sections)
	return nil
}
