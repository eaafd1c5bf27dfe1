// Package errors provides structured error types for genko.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindClipboard:
		return "clipboard error"
	default:
		return "unknown error"
	}
}

type Error struct {
	Op      Op
	Kind    Kind
	Err     error
	Context string
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an Error from any mix of Op, Kind, context string and
// underlying error.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Worksheet errors
func WorksheetNotFound(path string) error {
	return E(Op("worksheet.Load"), KindNotFound, fmt.Sprintf("worksheet %s not found", path))
}

func WorksheetLoadFailed(path string, err error) error {
	return E(Op("worksheet.Load"), KindIO, fmt.Sprintf("failed to read worksheet %s", path), err)
}

func WorksheetInvalid(path string, err error) error {
	return E(Op("worksheet.Load"), KindInvalid, fmt.Sprintf("worksheet %s is not valid JSON", path), err)
}

func WorksheetSaveFailed(path string, err error) error {
	return E(Op("worksheet.Save"), KindIO, fmt.Sprintf("failed to save worksheet to %s", path), err)
}

func WorksheetExists(path string) error {
	return E(Op("worksheet.Create"), KindInvalid, fmt.Sprintf("worksheet %s already exists", path))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Clipboard errors
func ClipboardFailed(op string, err error) error {
	return E(Op("sysclip."+op), KindClipboard, err)
}
