package sdjournal

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrClosed is returned by any method called after Close.
	ErrClosed = errors.New("sdjournal: journal handle is closed")

	// ErrFieldNotPresent is returned by the GetData family when the current
	// entry does not carry the requested field. Journal entries are sparse,
	// so this is an expected condition rather than a failure.
	ErrFieldNotPresent = errors.New("sdjournal: field not present in current entry")
)

// Error describes a failed call into libsystemd. Op names the C function and
// Errno carries the translated negative return code.
type Error struct {
	Op    string
	Errno syscall.Errno
}

func (e *Error) Error() string {
	return fmt.Sprintf("sdjournal: %s: %s (rc=%d)", e.Op, e.Errno.Error(), -int(e.Errno))
}

// Unwrap exposes the underlying errno so callers can match with errors.Is,
// e.g. errors.Is(err, syscall.EACCES).
func (e *Error) Unwrap() error {
	return e.Errno
}

// newError converts a negative sd-journal return code into an *Error.
func newError(op string, rc int) error {
	return &Error{Op: op, Errno: syscall.Errno(-rc)}
}
