package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/genko/cell"
	"github.com/iw2rmb/genko/grid"
)

// guideMark fills empty character boxes when guides are shown.
const guideMark = "・"

func (m *Model) renderContent() string {
	lay := m.layout()
	out := m.descriptionLines()

	st := m.cfg.Style
	promptW := runewidth.StringWidth(lay.prompt)
	for li, line := range lay.lines {
		lead := strings.Repeat(" ", line.offset)

		if m.item.ShowFurigana {
			var sb strings.Builder
			sb.WriteString(lead)
			sb.WriteString(strings.Repeat(" ", promptW))
			m.renderSections(&sb, line.sections, grid.CellFurigana)
			out = append(out, strings.TrimRight(sb.String(), " "))
		}

		var sb strings.Builder
		sb.WriteString(lead)
		if li == 0 && lay.prompt != "" {
			sb.WriteString(st.Prompt.Render(lay.prompt))
		} else {
			sb.WriteString(strings.Repeat(" ", promptW))
		}
		m.renderSections(&sb, line.sections, grid.CellChar)
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderSections(sb *strings.Builder, idxs []int, kind grid.CellKind) {
	for i, s := range idxs {
		if i > 0 {
			sb.WriteString(strings.Repeat(" ", sectionGapCells))
		}
		for b, box := range m.item.Sections[s].Boxes {
			p := grid.Pos{Section: s, Box: b}
			if kind == grid.CellFurigana {
				sb.WriteString(m.renderFurigana(p, box))
			} else {
				sb.WriteString(m.renderChar(p, box))
			}
		}
	}
}

func (m *Model) isActiveCell(p grid.Pos, kind grid.CellKind) bool {
	return m.focused && m.hasActive && m.pending == nil && !m.editingDesc &&
		m.active == p && m.kind == kind
}

func (m *Model) renderChar(p grid.Pos, box grid.Box) string {
	st := m.cfg.Style
	text := box.Char
	active := m.isActiveCell(p, grid.CellChar)
	if active && m.input != nil {
		text = m.input.Value()
	}

	var content string
	switch {
	case active && m.input != nil && m.input.State() == cell.Composing:
		content = st.Composing.Inherit(st.Cursor).Render(fitCells(text, boxContentCells))
	case active && m.input != nil && m.input.Selected():
		content = st.Selection.Render(fitCells(text, boxContentCells))
	case active:
		content = st.Cursor.Render(fitCells(text, boxContentCells))
	case text == "" && m.item.ShowGuides:
		content = st.Guide.Render(fitCells(guideMark, boxContentCells))
	default:
		content = st.Char.Render(fitCells(text, boxContentCells))
	}

	left, right := "[", "]"
	if m.item.HideBorderOnContent && text != "" {
		left, right = " ", " "
	}
	return st.Border.Render(left) + content + st.Border.Render(right)
}

func (m *Model) renderFurigana(p grid.Pos, box grid.Box) string {
	st := m.cfg.Style
	if m.isActiveCell(p, grid.CellFurigana) {
		return st.Cursor.Render(fitCells(m.furigana.Value(), boxCells))
	}
	return st.Furigana.Render(fitCells(box.Furigana, boxCells))
}

func (m *Model) descriptionLines() []string {
	if m.editingDesc {
		return strings.Split(m.desc.View(), "\n")
	}
	if m.item.Description == "" {
		return nil
	}
	lines := strings.Split(m.item.Description, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, m.cfg.Style.Description.Render(l))
	}
	return out
}

// fitCells truncates s to w terminal cells and centers it.
func fitCells(s string, w int) string {
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "")
	}
	sw := runewidth.StringWidth(s)
	left := (w - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-sw-left)
}

// RenderItem renders it without styling or focus, as laid out for print.
func RenderItem(it grid.Item, width int) string {
	m := New(Config{Item: it})
	m = m.SetSize(width, 0)
	return strings.Join(trimLines(m.renderContent()), "\n")
}

func trimLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
