// Package cell implements the input automaton that owns the character slot of
// one grid box.
//
// An Input is either Idle or Composing. Idle input reacts to value changes
// and to the Space, Enter and Backspace keys; Composing input only
// accumulates its buffer until the input method finishes. Decisions leave
// the automaton as Events that the grid container applies to the model.
package cell
