package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateMouse scrolls on wheel events and moves focus to the clicked cell.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if tea.MouseEvent(msg).IsWheel() {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.editingDesc {
		return m, nil
	}

	pos, kind, ok := m.layout().hit(msg.X, m.viewport.YOffset+msg.Y)
	if !ok {
		return m, nil
	}
	m.flushPendingFocus()
	m.log.Debug("cell clicked", "section", pos.Section, "box", pos.Box, "kind", kind.String())
	m.navigate(pos, kind)
	return m, nil
}
