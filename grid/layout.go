package grid

const (
	// PrintableWidthMm is the usable width of an A4 page after margins.
	PrintableWidthMm = 180.0
	// SectionGapMm separates neighbouring sections on one line.
	SectionGapMm = 2.0
)

// SectionWidthMm returns the printed width of a section.
func SectionWidthMm(s Section, boxSizeMm float64) float64 {
	return float64(len(s.Boxes)) * boxSizeMm
}

// PackLines greedily groups sections into printable lines and returns the
// section indices of each line in order.
//
// A section that does not fit the remaining width starts a new line; a
// section wider than the page still occupies a line of its own.
func PackLines(sections []Section, boxSizeMm float64) [][]int {
	return PackLinesWidth(sections, boxSizeMm, PrintableWidthMm)
}

// PackLinesWidth is PackLines with an explicit page width.
func PackLinesWidth(sections []Section, boxSizeMm, pageWidthMm float64) [][]int {
	if len(sections) == 0 {
		return nil
	}

	var lines [][]int
	var cur []int
	width := 0.0
	for i, s := range sections {
		w := SectionWidthMm(s, boxSizeMm)
		if len(cur) > 0 {
			w += SectionGapMm
		}
		if len(cur) > 0 && width+w > pageWidthMm {
			lines = append(lines, cur)
			cur = nil
			width = 0
			w = SectionWidthMm(s, boxSizeMm)
		}
		cur = append(cur, i)
		width += w
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}
