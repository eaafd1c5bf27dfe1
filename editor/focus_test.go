package editor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/focus"
	"github.com/iw2rmb/genko/grid"
)

func TestFocus_DeferredUntilMsg(t *testing.T) {
	m := New(Config{Item: itemOf([]string{"A"}), FocusDelay: time.Millisecond}).Focus()

	m, cmd := m.Update(press(tea.KeySpace))
	if cmd == nil {
		t.Fatalf("space should schedule a focus transfer")
	}
	checkChars(t, m.Item(), []string{"A", ""})
	checkActive(t, m, grid.Pos{}, grid.CellChar)
	if m.Input() != nil {
		t.Fatalf("input should be detached while focus is pending")
	}

	msg, ok := cmd().(focus.Msg)
	if !ok {
		t.Fatalf("focus cmd should produce focus.Msg")
	}
	if msg.Scope != m.ID() || msg.Pos != (grid.Pos{Section: 0, Box: 1}) {
		t.Fatalf("focus request: got %+v", msg.Request)
	}

	m, _ = m.Update(msg)
	checkActive(t, m, grid.Pos{Section: 0, Box: 1}, grid.CellChar)
	if m.Input() == nil {
		t.Fatalf("input should be attached after focus lands")
	}
}

func TestFocus_PendingFlushedByNextKey(t *testing.T) {
	m := New(Config{Item: itemOf([]string{"A"}), FocusDelay: time.Hour}).Focus()
	m = send(m, press(tea.KeySpace), typed("B"), press(tea.KeySpace))

	checkChars(t, m.Item(), []string{"A", "B", ""})
}

func TestFocus_StaleRequestDropped(t *testing.T) {
	m := New(Config{Item: itemOf([]string{"A"}), FocusDelay: time.Hour}).Focus()

	m, cmd := m.Update(press(tea.KeySpace))
	if cmd == nil || m.pending == nil {
		t.Fatalf("space should leave a pending focus transfer")
	}
	// The tick itself would block for the full delay.
	stale := focus.Msg{Request: *m.pending}

	// Flush the pending request and move back before the tick arrives.
	m = send(m, press(tea.KeyLeft))
	checkActive(t, m, grid.Pos{}, grid.CellChar)

	m, _ = m.Update(stale)
	checkActive(t, m, grid.Pos{}, grid.CellChar)
}

func TestFocus_OtherScopeIgnored(t *testing.T) {
	m := newFocused(itemOf([]string{"a", "b"}))
	m, _ = m.Update(focus.Msg{Request: focus.Request{Scope: "elsewhere", Pos: grid.Pos{Box: 1}}})
	checkActive(t, m, grid.Pos{}, grid.CellChar)
}

func TestFocus_HostRequest(t *testing.T) {
	m := New(Config{Item: itemOf([]string{"", "b"}), FocusDelay: -1})
	m = send(m, focus.Msg{Request: focus.Request{Scope: m.ID(), Pos: grid.Pos{Box: 1}}})

	if !m.Focused() {
		t.Fatalf("host focus request should select the grid")
	}
	checkActive(t, m, grid.Pos{Section: 0, Box: 1}, grid.CellChar)
}

func TestFocus_MissingTargetIgnored(t *testing.T) {
	m := newFocused(itemOf([]string{"a"}))
	m = send(m, focus.Msg{Request: focus.Request{Pos: grid.Pos{Section: 3}}})
	checkActive(t, m, grid.Pos{}, grid.CellChar)
}

func TestFocus_DefaultDelay(t *testing.T) {
	m := New(Config{})
	if got := m.focusDelay(); got != focus.DefaultDelay {
		t.Fatalf("default focus delay: got %v, want %v", got, focus.DefaultDelay)
	}
	m = New(Config{FocusDelay: -1})
	if got := m.focusDelay(); got != 0 {
		t.Fatalf("negative focus delay: got %v, want 0", got)
	}
}

func TestFocus_SetItemClampsActive(t *testing.T) {
	m := newFocused(itemOf([]string{"a", "b", "c"}))
	m = send(m, press(tea.KeyRight), press(tea.KeyRight))

	m = m.SetItem(itemOf([]string{"x"}))
	checkActive(t, m, grid.Pos{}, grid.CellChar)
	if v := m.Input().Value(); v != "x" {
		t.Fatalf("input after SetItem: got %q, want %q", v, "x")
	}
}
