package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(b)
}

func TestComponentLogger_WritesComponent(t *testing.T) {
	path := setupTestLogger(t)

	ComponentLogger("editor").Info("hello", "box", 3)

	content := readLog(t, path)
	if !strings.Contains(content, "component=editor") {
		t.Errorf("log should carry the component attribute: %q", content)
	}
	if !strings.Contains(content, "box=3") {
		t.Errorf("log should carry record attributes: %q", content)
	}
}

func TestSetDebug(t *testing.T) {
	path := setupTestLogger(t)
	log := ComponentLogger("test")

	log.Debug("hidden-debug-line")
	SetDebug(true)
	log.Debug("visible-debug-line")

	content := readLog(t, path)
	if strings.Contains(content, "hidden-debug-line") {
		t.Errorf("debug records should be filtered at info level")
	}
	if !strings.Contains(content, "visible-debug-line") {
		t.Errorf("debug records should be written after SetDebug(true)")
	}
}

func TestInit_SecondCallNoop(t *testing.T) {
	path := setupTestLogger(t)
	other := filepath.Join(t.TempDir(), "other.log")

	if err := Init(other); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if got := Path(); got != path {
		t.Errorf("Path() = %q, want %q", got, path)
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Errorf("Init should fail for a missing directory")
	}
}

func TestClose_Idempotent(t *testing.T) {
	setupTestLogger(t)
	Close()
	Close()
}
