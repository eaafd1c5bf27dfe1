package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the grid-level key bindings.
//
// Space, Enter and Backspace inside a character cell belong to the cell
// automaton and are not rebindable. Terminals report Ctrl+Enter as ctrl+j
// and Ctrl+Backspace as ctrl+h, hence the defaults below. Terminals that
// send ^H for a plain Backspace will delete the whole box on Backspace;
// rebind DeleteBox (for example to alt+backspace only) on those.
type KeyMap struct {
	Left, Right, Up, Down    key.Binding
	NextSection, PrevSection key.Binding

	InsertSectionAfter  key.Binding
	InsertSectionBefore key.Binding
	DeleteBox           key.Binding

	Paste, CopySection key.Binding

	EditDescription key.Binding
	Deselect        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous box")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next box")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "furigana row")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "character row")),

		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),

		InsertSectionAfter:  key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+enter", "insert section after")),
		InsertSectionBefore: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "insert section before")),
		DeleteBox:           key.NewBinding(key.WithKeys("ctrl+h", "alt+backspace"), key.WithHelp("ctrl+backspace", "delete box")),

		Paste:       key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		CopySection: key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy section")),

		EditDescription: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "edit description")),
		Deselect:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave grid")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.NextSection, km.InsertSectionAfter, km.DeleteBox, km.Deselect}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.NextSection, km.PrevSection, km.InsertSectionAfter, km.InsertSectionBefore, km.DeleteBox},
		{km.Paste, km.CopySection, km.EditDescription, km.Deselect},
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 && len(km.NextSection.Keys()) == 0
}
