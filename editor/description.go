package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// SanitizeText is the default description sanitizer: terminal escape
// sequences are stripped, line endings normalized and surrounding blank
// space trimmed.
func SanitizeText(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}

func (m Model) startDescription() (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}
	m.leaveCell()
	m.detach()
	m.editingDesc = true
	m.desc.SetValue(m.item.Description)
	return m, m.desc.Focus()
}

func (m Model) updateDescriptionKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	if key.Matches(msg, km.Deselect) || key.Matches(msg, km.EditDescription) {
		m.finishDescription()
		if m.hasActive {
			m.activate(m.active, m.kind)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.desc, cmd = m.desc.Update(msg)
	return m, cmd
}

func (m *Model) finishDescription() {
	m.editingDesc = false
	m.desc.Blur()
	text := m.cfg.Sanitize(m.desc.Value())
	if text == m.item.Description {
		return
	}
	m.item.Description = text
	m.dirty = true
}
