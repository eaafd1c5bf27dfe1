package editor

// Composition messages let hosts with an input-method bridge drive the
// active character cell. Scope is the grid id; empty targets any grid.
type CompositionStartMsg struct {
	Scope string
}

type CompositionUpdateMsg struct {
	Scope string
	Text  string
}

type CompositionEndMsg struct {
	Scope string
	Text  string
}

func scopeMatches(scope, id string) bool {
	return scope == "" || scope == id
}
