// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOverride indicates a user supplied path is missing, of the
	// wrong kind, or lacks the required permission
	ErrInvalidOverride = errors.New("invalid override")

	// ErrDiscoveryFailure indicates a helper-derived or computed default
	// path failed validation
	ErrDiscoveryFailure = errors.New("discovery failed")

	// ErrProbeFailure indicates the version probe program could not be
	// compiled or run
	ErrProbeFailure = errors.New("version probe failed")

	// ErrVersionParse indicates a malformed dot-separated version string
	ErrVersionParse = errors.New("invalid version")

	// ErrConstraintViolation indicates the detected server version fails a
	// required comparison
	ErrConstraintViolation = errors.New("version constraint violated")
)

// Error wraps an error with the check and path that produced it
type Error struct {
	Op   string // Check that failed, e.g. "--mysql-dir"
	Path string // Offending path if applicable
	Err  error  // Underlying error, wraps one of the sentinels above
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an *Error whose Err wraps kind followed by a formatted
// detail message.
func Errorf(kind error, op, path, format string, args ...any) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Err:  fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}
