package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/grid"
)

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"  padded \n", "padded"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"a\r\nb\rc", "a\nb\nc"},
	}
	for _, tc := range cases {
		if got := SanitizeText(tc.in); got != tc.want {
			t.Fatalf("SanitizeText(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDescription_EditAndCommit(t *testing.T) {
	var got []grid.Item
	m := New(Config{
		Item:       itemOf([]string{"a"}),
		FocusDelay: -1,
		OnUpdate:   func(it grid.Item) { got = append(got, it) },
	}).Focus()

	m = send(m, press(tea.KeyCtrlD))
	if !m.EditingDescription() {
		t.Fatalf("ctrl+d should open the description editor")
	}
	if m.Input() != nil {
		t.Fatalf("cell input should be detached while editing the description")
	}

	m = send(m, typed("  hello "), press(tea.KeySpace))
	checkChars(t, m.Item(), []string{"a"})

	m = send(m, press(tea.KeyEsc))
	if m.EditingDescription() {
		t.Fatalf("esc should close the description editor")
	}
	if !m.Focused() {
		t.Fatalf("closing the description should keep the grid selected")
	}
	if m.Item().Description != "hello" {
		t.Fatalf("description: got %q, want %q", m.Item().Description, "hello")
	}
	if len(got) != 1 {
		t.Fatalf("updates: got %d, want 1", len(got))
	}
	checkActive(t, m, grid.Pos{}, grid.CellChar)
	if m.Input() == nil {
		t.Fatalf("cell input should be reattached")
	}
}

func TestDescription_CustomSanitizer(t *testing.T) {
	m := New(Config{
		Item:       itemOf([]string{"a"}),
		FocusDelay: -1,
		Sanitize:   func(string) string { return "fixed" },
	}).Focus()
	m = send(m, press(tea.KeyCtrlD), typed("x"), press(tea.KeyCtrlD))

	if m.Item().Description != "fixed" {
		t.Fatalf("description: got %q", m.Item().Description)
	}
}

func TestDescription_BlurCommits(t *testing.T) {
	m := newFocused(itemOf([]string{"a"}))
	m = send(m, press(tea.KeyCtrlD), typed("note"))
	m = m.Blur()

	if m.Item().Description != "note" {
		t.Fatalf("description after blur: got %q", m.Item().Description)
	}
}
