// Package editor provides a Bubble Tea component that edits one grid item.
//
// The component owns the active (section, box) coordinate, routes keyboard
// and mouse input to the cell automaton and the grid operations, and renders
// sections packed into printable lines. Every mutation is reported once per
// input event through Config.OnUpdate.
package editor
