package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/cell"
	"github.com/iw2rmb/genko/focus"
	"github.com/iw2rmb/genko/grid"
)

// requestFocus asks for focus on p after delay. Immediate requests are
// applied in place; deferred ones detach the current cell until the
// focus.Msg arrives or the next key flushes them.
func (m *Model) requestFocus(p grid.Pos, kind grid.CellKind, delay time.Duration) tea.Cmd {
	m.focusSeq++
	req := focus.Request{Scope: m.item.ID, Pos: p, Kind: kind, Seq: m.focusSeq}
	if delay <= 0 {
		m.pending = nil
		m.applyFocus(req)
		return nil
	}
	m.pending = &req
	m.detach()
	return focus.Cmd(req, delay)
}

// focusAfterMutation requests focus with the configured mutation delay.
func (m *Model) focusAfterMutation(p grid.Pos) tea.Cmd {
	return m.requestFocus(p, grid.CellChar, m.focusDelay())
}

// navigate commits the active cell and moves focus at once.
func (m *Model) navigate(p grid.Pos, kind grid.CellKind) {
	m.leaveCell()
	m.requestFocus(p, kind, 0)
}

func (m *Model) flushPendingFocus() {
	if m.pending == nil {
		return
	}
	req := *m.pending
	m.pending = nil
	m.applyFocus(req)
}

func (m Model) updateFocus(msg focus.Msg) (Model, tea.Cmd) {
	if !msg.Matches(m.item.ID) {
		return m, nil
	}
	switch {
	case msg.Seq == 0:
		// Host request.
		m.leaveCell()
		m.pending = nil
		m.applyFocus(msg.Request)
		m.flush()
	case m.pending != nil && m.pending.Seq == msg.Seq:
		m.pending = nil
		m.applyFocus(msg.Request)
	default:
		m.log.Debug("stale focus request dropped", "seq", msg.Seq)
		return m, nil
	}
	m.rebuildContent()
	m.followActive()
	return m, nil
}

// applyFocus moves the active coordinate to the requested cell. Targets
// that no longer exist are dropped silently.
func (m *Model) applyFocus(req focus.Request) {
	if !grid.Contains(m.item.Sections, req.Pos) {
		m.log.Debug("focus target missing", "section", req.Pos.Section, "box", req.Pos.Box)
		return
	}
	m.focused = true
	m.activate(req.Pos, req.Kind)
}

func (m *Model) activate(p grid.Pos, kind grid.CellKind) {
	if kind == grid.CellFurigana && !m.item.ShowFurigana {
		kind = grid.CellChar
	}
	box, ok := m.item.Box(p)
	if !ok {
		return
	}

	m.hasActive = true
	m.active = p
	m.kind = kind

	if kind == grid.CellFurigana {
		m.input = nil
		m.furigana.SetValue(box.Furigana)
		m.furigana.CursorEnd()
		m.furigana.Focus()
		return
	}
	m.furigana.Blur()
	m.input = cell.New(cell.Config{SelectOnFocus: m.cfg.SelectOnFocus, MultiCommit: true}, box.Char)
	m.input.Focus()
}

func (m *Model) detach() {
	m.input = nil
	m.furigana.Blur()
}

func (m *Model) deactivate() {
	m.detach()
	m.hasActive = false
	m.pending = nil
}

// leaveCell commits the active cell before focus moves away from it.
func (m *Model) leaveCell() {
	if !m.hasActive || m.cfg.ReadOnly {
		return
	}
	switch {
	case m.kind == grid.CellFurigana && m.furigana.Focused():
		m.apply(grid.SetFurigana(m.item.Sections, m.active, m.furigana.Value()))
	case m.kind == grid.CellChar && m.input != nil:
		m.applyEvents(m.input.Blur())
	}
}
