package editor

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/genko/grid"
)

const (
	boxContentCells = 2
	boxCells        = boxContentCells + 2 // content plus two border cells
	sectionGapCells = 1
)

// cellSpan is the on-screen extent of one editable cell, in content rows
// and terminal columns.
type cellSpan struct {
	pos  grid.Pos
	kind grid.CellKind
	row  int
	x    int
	w    int
}

type layoutLine struct {
	sections []int
	offset   int
	charRow  int
}

type gridLayout struct {
	descRows int
	prompt   string
	lines    []layoutLine
	spans    []cellSpan
}

func (m *Model) promptText() string {
	if !m.item.ShowPromptNumber || m.item.PromptNumber == nil {
		return ""
	}
	return fmt.Sprintf("%d. ", *m.item.PromptNumber)
}

// layout maps the packed lines of the item onto content rows and columns.
func (m *Model) layout() gridLayout {
	lay := gridLayout{
		descRows: len(m.descriptionLines()),
		prompt:   m.promptText(),
	}
	promptW := runewidth.StringWidth(lay.prompt)
	sections := m.item.Sections

	row := lay.descRows
	for _, idxs := range grid.PackLines(sections, m.item.BoxSizeMm) {
		width := promptW
		for i, s := range idxs {
			if i > 0 {
				width += sectionGapCells
			}
			width += len(sections[s].Boxes) * boxCells
		}

		line := layoutLine{sections: idxs, offset: alignOffset(m.item.Alignment, m.viewport.Width, width)}
		furiganaRow := -1
		if m.item.ShowFurigana {
			furiganaRow = row
			row++
		}
		line.charRow = row
		row++

		x := line.offset + promptW
		for i, s := range idxs {
			if i > 0 {
				x += sectionGapCells
			}
			for b := range sections[s].Boxes {
				p := grid.Pos{Section: s, Box: b}
				if furiganaRow >= 0 {
					lay.spans = append(lay.spans, cellSpan{pos: p, kind: grid.CellFurigana, row: furiganaRow, x: x, w: boxCells})
				}
				lay.spans = append(lay.spans, cellSpan{pos: p, kind: grid.CellChar, row: line.charRow, x: x, w: boxCells})
				x += boxCells
			}
		}
		lay.lines = append(lay.lines, line)
	}
	return lay
}

func alignOffset(a grid.Alignment, avail, width int) int {
	if avail <= width {
		return 0
	}
	switch a {
	case grid.AlignCenter:
		return (avail - width) / 2
	case grid.AlignRight:
		return avail - width
	default:
		return 0
	}
}

// hit returns the cell under content coordinates (x, row).
func (l gridLayout) hit(x, row int) (grid.Pos, grid.CellKind, bool) {
	for _, sp := range l.spans {
		if sp.row == row && x >= sp.x && x < sp.x+sp.w {
			return sp.pos, sp.kind, true
		}
	}
	return grid.Pos{}, grid.CellChar, false
}

func (l gridLayout) rowOf(p grid.Pos, kind grid.CellKind) (int, bool) {
	for _, sp := range l.spans {
		if sp.pos == p && sp.kind == kind {
			return sp.row, true
		}
	}
	return 0, false
}
