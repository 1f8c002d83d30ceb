package constraint

import (
	"errors"
	"fmt"

	"github.com/arc-language/mysqlprobe/pkg/core"
)

// ParseError reports a malformed version string. Field names where the
// string came from: the version macro or a constraint key.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid version %q", e.Input)
	}
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Input)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{core.ErrVersionParse}
	}
	return []error{core.ErrVersionParse, e.Err}
}

// ViolationError reports the first constraint the detected version failed.
type ViolationError struct {
	Detected string
	Kind     Kind
	Required string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("MySQL server version %s violates %s=%s", e.Detected, e.Kind.Key(), e.Required)
}

func (e *ViolationError) Unwrap() error {
	return core.ErrConstraintViolation
}

// cause returns the error underneath a ParseError from Parse.
func cause(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
