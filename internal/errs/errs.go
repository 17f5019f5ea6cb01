// Package errs defines the coded errors returned by a scan.
//
// Only configuration and output errors abort a run. Per-item problems
// (unreadable rule sources, unreadable files) are reported as warnings and
// carry a code so callers and tests can tell them apart.
package errs

import (
	"errors"
	"fmt"
)

// Code identifies an error category.
type Code string

const (
	// ErrConfig is fatal: the scan cannot start (missing root, bad config file).
	ErrConfig Code = "CONFIG"
	// ErrSourceUnreadable marks an ignore-rule source that could not be read.
	ErrSourceUnreadable Code = "SOURCE_UNREADABLE"
	// ErrFileRead marks a candidate file that could not be read or decoded.
	ErrFileRead Code = "FILE_READ"
	// ErrOutput is fatal: the document could not be written.
	ErrOutput Code = "OUTPUT"
)

// Error is a coded error with an optional path and wrapped cause.
type Error struct {
	Code    Code
	Message string
	Path    string
	Wrapped error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates an error without a cause.
func New(code Code, path, format string, args ...any) *Error {
	return &Error{Code: code, Path: path, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to err. A nil err yields nil.
func Wrap(err error, code Code, path, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Path: path, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code Code) bool {
	var e *Error
	for err != nil {
		if errors.As(err, &e) {
			if e.Code == code {
				return true
			}
			err = e.Wrapped
			continue
		}
		return false
	}
	return false
}
