package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error by the layer that produced it.
type Kind int

const (
	// KindNotImplemented marks a statement kind the engine does not support.
	KindNotImplemented Kind = iota
	// KindGeneral marks a domain-rule violation: table/column not found,
	// constraint violations, column/value count mismatches.
	KindGeneral
	// KindInternal marks a translation-layer structural error: wrong
	// statement shape, duplicate column, multiple primary keys.
	KindInternal
	// KindSQL wraps a lower-level parser failure.
	KindSQL
	// KindIO wraps a filesystem failure (history file, etc.).
	KindIO
	// KindUnknownCommand marks an unrecognized meta command.
	KindUnknownCommand
)

// Error is the single error type returned across the engine boundary.
// Every public entry point surfaces one of these instead of panicking.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch e.Kind {
	case KindNotImplemented:
		return fmt.Sprintf("Not implemented: %s", msg)
	case KindInternal:
		return fmt.Sprintf("Internal error: %s", msg)
	case KindSQL:
		return fmt.Sprintf("SQL error: %s", msg)
	case KindIO:
		return fmt.Sprintf("IO error: %s", msg)
	case KindUnknownCommand:
		return fmt.Sprintf("Unknown command: %s", msg)
	default:
		return fmt.Sprintf("General error: %s", msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is compares errors by kind so callers can match on sentinel-style values.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
	}
	return false
}

// KindOf extracts the Kind from err. The second result is false when err
// is not an engine error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func General(msg string) *Error { return &Error{Kind: KindGeneral, Message: msg} }

func Generalf(format string, args ...any) *Error {
	return &Error{Kind: KindGeneral, Message: fmt.Sprintf(format, args...)}
}

func Internal(msg string) *Error { return &Error{Kind: KindInternal, Message: msg} }

func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

func NotImplemented(msg string) *Error { return &Error{Kind: KindNotImplemented, Message: msg} }

func SQL(err error) *Error { return &Error{Kind: KindSQL, Err: err} }

func SQLf(format string, args ...any) *Error {
	return &Error{Kind: KindSQL, Message: fmt.Sprintf(format, args...)}
}

func IO(err error) *Error { return &Error{Kind: KindIO, Err: err} }

func UnknownCommand(msg string) *Error { return &Error{Kind: KindUnknownCommand, Message: msg} }
