package worksheet

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/genko/editor"
)

// KeyMap holds the worksheet-level bindings. Everything else goes to the
// active grid.
type KeyMap struct {
	NextGrid key.Binding
	PrevGrid key.Binding
	AddGrid  key.Binding
	Save     key.Binding
	Help     key.Binding
	Quit     key.Binding

	Grid editor.KeyMap
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextGrid: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next grid")),
		PrevGrid: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous grid")),
		AddGrid:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add grid")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Grid:     editor.DefaultKeyMap(),
	}
}

func (km KeyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{km.NextGrid, km.Save, km.Help, km.Quit}, km.Grid.ShortHelp()...)
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{km.NextGrid, km.PrevGrid, km.AddGrid, km.Save, km.Help, km.Quit}}, km.Grid.FullHelp()...)
}
