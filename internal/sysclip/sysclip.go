// Package sysclip connects the editor's clipboard bindings to the system
// clipboard.
package sysclip

import (
	"log/slog"

	"github.com/atotto/clipboard"

	errs "github.com/iw2rmb/genko/internal/errors"
)

var (
	clipboardRead  = clipboard.ReadAll
	clipboardWrite = clipboard.WriteAll
)

// System implements editor.Clipboard with the platform clipboard tools
// (pbcopy, xclip, xsel, wl-clipboard or the Windows API).
type System struct {
	Log *slog.Logger
}

// Available reports whether a clipboard backend was found.
func Available() bool {
	return !clipboard.Unsupported
}

func (s System) ReadText() (string, error) {
	text, err := clipboardRead()
	if err != nil {
		s.logger().Debug("clipboard read failed", "err", err)
		return "", errs.ClipboardFailed("ReadText", err)
	}
	return text, nil
}

func (s System) WriteText(text string) error {
	if err := clipboardWrite(text); err != nil {
		s.logger().Debug("clipboard write failed", "err", err)
		return errs.ClipboardFailed("WriteText", err)
	}
	s.logger().Debug("clipboard written", "bytes", len(text))
	return nil
}

func (s System) logger() *slog.Logger {
	if s.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Log
}
