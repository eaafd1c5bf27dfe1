// Package grid implements the pure value model behind the character grid
// editor: boxes, sections, grid items and the operations that reshape them.
//
// Coordinates are 0-based (Section, Box) pairs. Every operation returns new
// slices and leaves its input untouched, so callers may keep and diff the
// previous state.
package grid
