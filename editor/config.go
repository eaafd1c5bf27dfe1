package editor

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/genko/grid"
)

// Config configures the editor Model.
type Config struct {
	// Initial grid item. A zero item is replaced by grid.NewItem.
	Item grid.Item

	// OnUpdate receives the item after every input event that changed it.
	OnUpdate func(grid.Item)

	KeyMap KeyMap
	Style  Style

	// SelectOnFocus selects a character cell's content when it gains focus.
	SelectOnFocus bool

	// FocusDelay defers focus transfers caused by mutations. Zero uses
	// focus.DefaultDelay; negative transfers focus immediately.
	FocusDelay time.Duration

	ReadOnly bool

	// Clipboard backs the paste and copy-section bindings. Nil disables them.
	Clipboard Clipboard

	// Sanitize cleans description text before it is stored. Nil uses
	// SanitizeText.
	Sanitize func(string) string

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.Item.ID == "" && len(cfg.Item.Sections) == 0 {
		cfg.Item = grid.NewItem()
	}
	if !grid.Valid(cfg.Item.Sections) {
		cfg.Item.Sections = grid.Normalize(cfg.Item.Sections)
	}
	if cfg.Item.BoxSizeMm <= 0 {
		cfg.Item.BoxSizeMm = grid.DefaultBoxSizeMm
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Sanitize == nil {
		cfg.Sanitize = SanitizeText
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
