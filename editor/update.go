package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/cell"
	"github.com/iw2rmb/genko/grid"
	"github.com/iw2rmb/genko/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	// A key always sees the state the previous key left behind.
	m.flushPendingFocus()

	if m.editingDesc {
		return m.updateDescriptionKey(msg)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Deselect):
		return m.Blur(), nil
	case key.Matches(msg, km.EditDescription):
		return m.startDescription()
	}

	if !m.hasActive {
		return m, nil
	}
	p := m.active

	switch {
	case key.Matches(msg, km.Left):
		m.step(grid.DirLeft, m.kind)
	case key.Matches(msg, km.Right):
		m.step(grid.DirRight, m.kind)
	case key.Matches(msg, km.NextSection):
		m.step(grid.DirNextSection, grid.CellChar)
	case key.Matches(msg, km.PrevSection):
		m.step(grid.DirPrevSection, grid.CellChar)

	case key.Matches(msg, km.Up):
		if m.kind == grid.CellChar && m.item.ShowFurigana {
			m.navigate(p, grid.CellFurigana)
		}
	case key.Matches(msg, km.Down):
		if m.kind == grid.CellFurigana {
			m.navigate(p, grid.CellChar)
		}

	case key.Matches(msg, km.InsertSectionAfter):
		return m, m.insertSection(grid.After)
	case key.Matches(msg, km.InsertSectionBefore):
		return m, m.insertSection(grid.Before)
	case key.Matches(msg, km.DeleteBox):
		return m, m.deleteBox()

	case key.Matches(msg, km.CopySection):
		m.copySection()
	case m.kind == grid.CellChar && key.Matches(msg, km.Paste):
		return m, m.pasteClipboard()

	default:
		if m.kind == grid.CellFurigana {
			return m.updateFuriganaKey(msg)
		}
		return m, m.updateCharKey(msg)
	}
	return m, nil
}

func (m *Model) step(dir grid.MoveDir, kind grid.CellKind) {
	next, ok := grid.Step(m.item.Sections, m.active, dir)
	if !ok {
		return
	}
	m.navigate(next, kind)
}

func (m *Model) updateCharKey(msg tea.KeyMsg) tea.Cmd {
	if m.cfg.ReadOnly || m.input == nil {
		return nil
	}
	in := m.input

	var events []cell.Event
	switch msg.Type {
	case tea.KeySpace:
		events, _ = in.Key(cell.Key{Code: cell.KeySpace, Alt: msg.Alt})
	case tea.KeyEnter:
		events, _ = in.Key(cell.Key{Code: cell.KeyEnter, Alt: msg.Alt})
	case tea.KeyBackspace:
		var handled bool
		events, handled = in.Key(cell.Key{Code: cell.KeyBackspace, Alt: msg.Alt})
		if !handled {
			events = in.Backspace()
		}
	case tea.KeyRunes:
		if len(msg.Runes) == 0 || msg.Alt {
			return nil
		}
		text := string(msg.Runes)
		// Pasted text and multi-grapheme bursts (terminal IME commits) are
		// distributed across boxes like a finished composition.
		if msg.Paste || grapheme.Count(text) > 1 {
			return m.insertText(text)
		}
		events = in.Type(text)
	default:
		return nil
	}
	return m.applyEvents(events)
}

func (m Model) updateFuriganaKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}
	if msg.Type == tea.KeyEnter {
		m.navigate(m.active, grid.CellChar)
		return m, nil
	}
	var cmd tea.Cmd
	m.furigana, cmd = m.furigana.Update(msg)
	return m, cmd
}

// insertText distributes programmatic text over boxes starting at the
// active box.
func (m *Model) insertText(text string) tea.Cmd {
	if m.input == nil {
		return nil
	}
	chars := grapheme.Printable(text)
	if len(chars) == 0 {
		return nil
	}
	m.input.CompositionStart()
	return m.applyEvents(m.input.CompositionEnd(grapheme.Join(chars)))
}

// applyEvents applies cell events in order against the current item.
func (m *Model) applyEvents(events []cell.Event) tea.Cmd {
	var cmd tea.Cmd
	for _, ev := range events {
		if !m.hasActive {
			break
		}
		switch ev.Kind {
		case cell.EventCommit:
			m.apply(grid.SetChar(m.item.Sections, m.active, ev.Char))
		case cell.EventAdvance:
			cmd = m.advance()
		case cell.EventRetreat:
			cmd = m.retreat()
		case cell.EventSectionBreak:
			ch := grid.BreakSection(m.item.Sections, m.active.Section, m.active.Box)
			if m.apply(ch) {
				cmd = m.focusAfterMutation(ch.Focus)
			}
		case cell.EventMultiCommit:
			ch := grid.MultiCommit(m.item.Sections, m.active.Section, m.active.Box, ev.Chars)
			if m.apply(ch) && ch.HasFocus {
				cmd = m.focusAfterMutation(ch.Focus)
			}
		}
	}
	return cmd
}

// advance moves to the next box, appending one past the section end.
func (m *Model) advance() tea.Cmd {
	p := m.active
	if grid.IsLastBox(m.item.Sections, p) {
		ch := grid.AddBox(m.item.Sections, p.Section)
		if !m.apply(ch) {
			return nil
		}
		return m.focusAfterMutation(ch.Focus)
	}
	return m.focusAfterMutation(grid.Pos{Section: p.Section, Box: p.Box + 1})
}

// retreat moves to the previous box. A blank trailing box is removed on the
// way; box 0 of a section is a dead end.
func (m *Model) retreat() tea.Cmd {
	p := m.active
	box, ok := m.item.Box(p)
	if !ok {
		return nil
	}
	boxes := len(m.item.Sections[p.Section].Boxes)
	if grid.IsLastBox(m.item.Sections, p) && box.IsEmpty() && boxes > 1 {
		ch := grid.RemoveEmptyBox(m.item.Sections, p.Section, p.Box)
		if !m.apply(ch) {
			return nil
		}
		return m.focusAfterMutation(ch.Focus)
	}
	if p.Box > 0 {
		return m.focusAfterMutation(grid.Pos{Section: p.Section, Box: p.Box - 1})
	}
	return nil
}

func (m *Model) insertSection(where grid.Placement) tea.Cmd {
	if m.cfg.ReadOnly {
		return nil
	}
	m.leaveCell()
	ch := grid.InsertSection(m.item.Sections, m.active.Section, where)
	if !m.apply(ch) {
		return nil
	}
	return m.focusAfterMutation(ch.Focus)
}

func (m *Model) deleteBox() tea.Cmd {
	if m.cfg.ReadOnly {
		return nil
	}
	ch := grid.DeleteBox(m.item.Sections, m.active.Section, m.active.Box)
	if !m.apply(ch) {
		return nil
	}
	return m.focusAfterMutation(ch.Focus)
}

func (m *Model) pasteClipboard() tea.Cmd {
	if m.cfg.Clipboard == nil || m.cfg.ReadOnly {
		return nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Debug("clipboard read failed", "err", err)
		return nil
	}
	return m.insertText(s)
}

func (m *Model) copySection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := grid.SectionText(m.item.Sections[m.active.Section])
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Debug("clipboard write failed", "err", err)
	}
}

func (m Model) updateComposition(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused || m.cfg.ReadOnly {
		return m, nil
	}
	m.flushPendingFocus()
	if m.input == nil || m.kind != grid.CellChar {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case CompositionStartMsg:
		if !scopeMatches(msg.Scope, m.item.ID) {
			return m, nil
		}
		m.input.CompositionStart()
	case CompositionUpdateMsg:
		if !scopeMatches(msg.Scope, m.item.ID) {
			return m, nil
		}
		m.input.CompositionUpdate(msg.Text)
	case CompositionEndMsg:
		if !scopeMatches(msg.Scope, m.item.ID) {
			return m, nil
		}
		cmd = m.applyEvents(m.input.CompositionEnd(msg.Text))
	}
	m.flush()
	m.rebuildContent()
	m.followActive()
	return m, cmd
}
