package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/grid"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouse_ClickActivatesCell(t *testing.T) {
	m := New(Config{Item: itemOf([]string{"a", "b"}, []string{"c"}), FocusDelay: -1})

	m = send(m, click(5, 0))
	if !m.Focused() {
		t.Fatalf("click should select the grid")
	}
	checkActive(t, m, grid.Pos{Section: 0, Box: 1}, grid.CellChar)

	// Second section starts after the gap: 8 + 1.
	m = send(m, click(9, 0))
	checkActive(t, m, grid.Pos{Section: 1, Box: 0}, grid.CellChar)

	m = send(m, click(8, 0))
	checkActive(t, m, grid.Pos{Section: 1, Box: 0}, grid.CellChar)
}

func TestMouse_ClickFuriganaRow(t *testing.T) {
	it := itemOf([]string{"a", "b"})
	it.ShowFurigana = true
	it.Description = "note"
	m := New(Config{Item: it, FocusDelay: -1})

	m = send(m, click(1, 1))
	checkActive(t, m, grid.Pos{}, grid.CellFurigana)

	m = send(m, click(6, 2))
	checkActive(t, m, grid.Pos{Section: 0, Box: 1}, grid.CellChar)
}

func TestMouse_ClickCommitsPreviousCell(t *testing.T) {
	m := newFocused(itemOf([]string{"", "b"}))
	m = send(m, typed("x"), click(4, 0))

	checkChars(t, m.Item(), []string{"x", "b"})
	checkActive(t, m, grid.Pos{Section: 0, Box: 1}, grid.CellChar)
}

func TestMouse_ReleaseIgnored(t *testing.T) {
	m := New(Config{Item: itemOf([]string{"a"}), FocusDelay: -1})
	m = send(m, tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Focused() {
		t.Fatalf("release should not select the grid")
	}
}
