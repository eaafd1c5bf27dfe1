package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iw2rmb/genko/grid"
	errs "github.com/iw2rmb/genko/internal/errors"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BoxSizeMm != 10 || !cfg.ShowFurigana || !cfg.ShowGuides || cfg.Alignment != grid.AlignLeft {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.FocusDelay() != 50*time.Millisecond {
		t.Errorf("FocusDelay() = %v, want 50ms", cfg.FocusDelay())
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"box_size_mm": 15, "alignment": "center", "focus_delay_ms": -1}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BoxSizeMm != 15 || cfg.Alignment != grid.AlignCenter {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.ShowFurigana {
		t.Errorf("unset fields should keep their defaults")
	}
	if cfg.FocusDelay() >= 0 {
		t.Errorf("negative focus_delay_ms should map to an immediate delay, got %v", cfg.FocusDelay())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    errs.Kind
	}{
		{"bad json", `{`, errs.KindConfig},
		{"zero box size", `{"box_size_mm": 0}`, errs.KindInvalid},
		{"unknown alignment", `{"alignment": "justify"}`, errs.KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load should fail")
			}
			if got := errs.GetKind(err); got != tt.kind {
				t.Errorf("kind = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.BoxSizeMm = 12
	cfg.HideBorderOnContent = true
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.BoxSizeMm != 12 || !again.HideBorderOnContent {
		t.Errorf("reloaded config: %+v", again)
	}
}

func TestNewItemAndEditorConfig(t *testing.T) {
	cfg := Default()
	cfg.BoxSizeMm = 8
	cfg.ShowGuides = false
	cfg.FocusDelayMs = 0

	it := cfg.NewItem()
	if it.BoxSizeMm != 8 || it.ShowGuides || len(it.Sections) != 1 {
		t.Errorf("NewItem: %+v", it)
	}

	ec := cfg.EditorConfig(it)
	if ec.Item.ID != it.ID || !ec.SelectOnFocus {
		t.Errorf("EditorConfig: %+v", ec)
	}
	if ec.FocusDelay != 0 {
		t.Errorf("zero focus_delay_ms should leave the editor default, got %v", ec.FocusDelay)
	}
}
