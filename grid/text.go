package grid

import (
	"strings"

	"github.com/iw2rmb/genko/internal/grapheme"
)

// Text returns the characters of sections, one space between sections.
// Empty boxes contribute nothing.
func Text(sections []Section) string {
	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(SectionText(s))
	}
	return sb.String()
}

// SectionText returns the characters of one section.
func SectionText(s Section) string {
	var sb strings.Builder
	for _, b := range s.Boxes {
		sb.WriteString(b.Char)
	}
	return sb.String()
}

// SectionsFromText builds sections from text: whitespace separates
// sections and each grapheme becomes one box. Blank text yields a single
// empty section.
func SectionsFromText(text string) []Section {
	var out []Section
	for _, word := range strings.Fields(text) {
		chars := grapheme.Printable(word)
		if len(chars) == 0 {
			continue
		}
		boxes := make([]Box, 0, len(chars))
		for _, c := range chars {
			boxes = append(boxes, Box{Char: c})
		}
		out = append(out, Section{ID: NewID(), Boxes: boxes})
	}
	if len(out) == 0 {
		return []Section{NewSection()}
	}
	return out
}
