package editor

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/grid"
)

func itemOf(sections ...[]string) grid.Item {
	it := grid.NewItem()
	it.ShowFurigana = false
	it.ShowGuides = false
	it.Sections = nil
	for _, chars := range sections {
		sec := grid.Section{ID: grid.NewID()}
		for _, c := range chars {
			sec.Boxes = append(sec.Boxes, grid.Box{Char: c})
		}
		it.Sections = append(it.Sections, sec)
	}
	return it
}

func newFocused(it grid.Item) Model {
	return New(Config{Item: it, FocusDelay: -1}).Focus()
}

func charsOf(it grid.Item) [][]string {
	out := make([][]string, 0, len(it.Sections))
	for _, s := range it.Sections {
		row := make([]string, 0, len(s.Boxes))
		for _, b := range s.Boxes {
			row = append(row, b.Char)
		}
		out = append(out, row)
	}
	return out
}

func checkChars(t *testing.T, it grid.Item, want ...[]string) {
	t.Helper()
	if got := charsOf(it); !reflect.DeepEqual(got, want) {
		t.Fatalf("sections: got %q, want %q", got, want)
	}
}

func checkActive(t *testing.T, m Model, want grid.Pos, wantKind grid.CellKind) {
	t.Helper()
	p, kind, ok := m.Active()
	if !ok {
		t.Fatalf("no active cell, want %v", want)
	}
	if p != want || kind != wantKind {
		t.Fatalf("active: got %v %s, want %v %s", p, kind, want, wantKind)
	}
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func alt(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

type fakeClipboard struct {
	text    string
	written []string
	err     error
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, c.err }

func (c *fakeClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.written = append(c.written, s)
	return nil
}
