// Package logger writes genko's debug log through log/slog.
//
// A terminal UI owns stdout, so records go to a file. Nothing is written
// until Init or the first ComponentLogger call.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is the log file used when Init was not called.
const DefaultLogPath = "/tmp/genko-debug.log"

var (
	mu       sync.Mutex
	slogger  *slog.Logger
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	logPath  string
)

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens path for appending. Calls after the first successful one are
// no-ops.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

func initLocked(path string) error {
	if slogger != nil {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	slogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	slogger.Info("Logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if slogger != nil {
		return
	}
	if err := initLocked(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// Path returns the file the logger writes to, or "" before Init.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// ComponentLogger returns a logger with the component attribute attached.
//
//	log := logger.ComponentLogger("editor")
//	log.Debug("focus moved", "section", 1, "box", 0)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slogger.With(slog.String("component", component))
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogger = nil
}

// Reset drops all state so Init can run again. Used by tests.
func Reset() {
	Close()

	mu.Lock()
	defer mu.Unlock()
	logPath = ""
	levelVar = new(slog.LevelVar)
}
