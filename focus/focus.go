// Package focus carries focus-transfer intents from grid operations to the
// grid that renders the target cell.
//
// A Request names a grid (Scope) and a cell inside it. Cmd delivers the
// request as a Msg after a delay so the mutation that produced it is
// rendered first. A request whose grid or cell no longer exists is dropped
// by the receiver.
package focus

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/grid"
)

// DefaultDelay is the delay used for focus requests produced by mutations.
const DefaultDelay = 50 * time.Millisecond

type Request struct {
	// Scope is the id of the target grid. Empty means the first grid.
	Scope string
	Pos   grid.Pos
	Kind  grid.CellKind

	// Seq orders requests issued by one grid; zero marks a host request.
	Seq uint64
}

// Msg delivers a Request.
type Msg struct {
	Request
}

// Cmd delivers req after delay. A non-positive delay delivers it on the
// next turn of the event loop.
func Cmd(req Request, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return Msg{Request: req} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return Msg{Request: req} })
}

// Matches reports whether a grid with the given id accepts req when it is
// the only grid in scope.
func (r Request) Matches(id string) bool {
	return r.Scope == "" || r.Scope == id
}

// Resolve returns the index of the grid that owns scope among ids. An empty
// scope resolves to the first grid.
func Resolve(ids []string, scope string) (int, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	if scope == "" {
		return 0, true
	}
	for i, id := range ids {
		if id == scope {
			return i, true
		}
	}
	return 0, false
}
