// Package config loads the user's defaults for new grids and the editor.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/iw2rmb/genko/editor"
	"github.com/iw2rmb/genko/focus"
	"github.com/iw2rmb/genko/grid"
	errs "github.com/iw2rmb/genko/internal/errors"
)

// Config holds the application configuration
type Config struct {
	BoxSizeMm           float64        `json:"box_size_mm"`
	ShowFurigana        bool           `json:"show_furigana"`
	FuriganaFontSize    float64        `json:"furigana_font_size"`
	ShowGuides          bool           `json:"show_guides"`
	Alignment           grid.Alignment `json:"alignment"`
	SelectOnFocus       bool           `json:"select_on_focus"`
	FocusDelayMs        int            `json:"focus_delay_ms"` // negative transfers focus immediately
	HideBorderOnContent bool           `json:"hide_border_on_content"`

	mu       sync.RWMutex
	filePath string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BoxSizeMm:        grid.DefaultBoxSizeMm,
		ShowFurigana:     true,
		FuriganaFontSize: grid.DefaultFuriganaFontSize,
		ShowGuides:       true,
		Alignment:        grid.AlignLeft,
		SelectOnFocus:    true,
		FocusDelayMs:     int(focus.DefaultDelay / time.Millisecond),
	}
}

// DefaultPath returns ~/.genko/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".genko", "config.json"), nil
}

// Load reads the config at path, or the default path when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errs.ConfigLoadFailed("~/.genko/config.json", err)
		}
		path = p
	}

	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errs.ConfigLoadFailed(path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errs.ConfigLoadFailed(path, err)
	}
	if cfg.Alignment == "" {
		cfg.Alignment = grid.AlignLeft
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.BoxSizeMm <= 0 {
		return errs.ConfigInvalid(fmt.Sprintf("box_size_mm must be positive, got %v", c.BoxSizeMm))
	}
	if c.FuriganaFontSize < 0 {
		return errs.ConfigInvalid(fmt.Sprintf("furigana_font_size must not be negative, got %v", c.FuriganaFontSize))
	}
	if !c.Alignment.Valid() {
		return errs.ConfigInvalid(fmt.Sprintf("unknown alignment %q", c.Alignment))
	}
	return nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config to the path it was loaded from.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errs.ConfigSaveFailed("", fmt.Errorf("no config path"))
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errs.ConfigSaveFailed(c.filePath, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errs.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errs.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// NewItem returns an empty grid item carrying the configured defaults.
func (c *Config) NewItem() grid.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it := grid.NewItem()
	it.BoxSizeMm = c.BoxSizeMm
	it.ShowFurigana = c.ShowFurigana
	it.FuriganaFontSize = c.FuriganaFontSize
	it.ShowGuides = c.ShowGuides
	it.Alignment = c.Alignment
	it.HideBorderOnContent = c.HideBorderOnContent
	return it
}

// FocusDelay converts FocusDelayMs to the editor's convention.
func (c *Config) FocusDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.FocusDelayMs < 0 {
		return -1
	}
	return time.Duration(c.FocusDelayMs) * time.Millisecond
}

// EditorConfig returns an editor configuration for it.
func (c *Config) EditorConfig(it grid.Item) editor.Config {
	return editor.Config{
		Item:          it,
		Style:         editor.DefaultStyle(),
		SelectOnFocus: c.SelectOnFocus,
		FocusDelay:    c.FocusDelay(),
	}
}
