// Package errs defines the stable failure codes surfaced by pydt commands.
package errs

import (
	"errors"
	"fmt"
)

// Code identifies a failure condition. Codes are part of the CLI contract
// and are printed verbatim on stderr.
type Code string

const (
	// ToolMissing means a required external tool is not on PATH.
	ToolMissing Code = "TOOL_MISSING"
	// DestinationConflict means the target directory exists, is not empty,
	// and --force was not given.
	DestinationConflict Code = "DESTINATION_CONFLICT"
	// IOFailure covers failed file writes, failed external commands, and
	// any other I/O problem after validation passed.
	IOFailure Code = "IO_FAILURE"
	// InvalidSpec means the requested project name, kind, or path was
	// rejected before any side effect.
	InvalidSpec Code = "INVALID_SPEC"
)

// Error is a coded error with an optional wrapped cause.
type Error struct {
	Code  Code
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a coded error with a formatted message.
func New(code Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a coded error wrapping an underlying cause.
func Wrap(code Code, cause error, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// CodeOf returns the code carried by err, or "" if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
