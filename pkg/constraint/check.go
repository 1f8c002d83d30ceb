package constraint

import (
	"github.com/rs/zerolog/log"

	"github.com/arc-language/mysqlprobe/pkg/env"
	"github.com/arc-language/mysqlprobe/pkg/status"
)

// Constraint is one requirement on the server version.
type Constraint struct {
	Kind     Kind
	Required string
}

// Set is an ordered list of constraints. Check evaluates them in slice
// order and stops at the first violation.
type Set []Constraint

// New builds a Set from constraints in the given order.
func New(cs ...Constraint) Set {
	return Set(cs)
}

// MinVersion requires detected >= v.
func MinVersion(v string) Constraint { return Constraint{Kind: AtLeast, Required: v} }

// ExactVersion requires detected == v.
func ExactVersion(v string) Constraint { return Constraint{Kind: Exact, Required: v} }

// MaxVersion requires detected <= v.
func MaxVersion(v string) Constraint { return Constraint{Kind: AtMost, Required: v} }

// FromValues builds a Set in canonical order (atleast, exact, max),
// skipping empty values. It is how command line flags become a Set.
func FromValues(atLeast, exact, atMost string) Set {
	var s Set
	if atLeast != "" {
		s = append(s, MinVersion(atLeast))
	}
	if exact != "" {
		s = append(s, ExactVersion(exact))
	}
	if atMost != "" {
		s = append(s, MaxVersion(atMost))
	}
	return s
}

// Check validates detected against every constraint in s. An empty set
// is a no-op: nothing is parsed and nothing is reported.
func Check(detected string, s Set, r *status.Reporter) error {
	if len(s) == 0 {
		return nil
	}

	r.Start("Checking MySQL version")

	mv, err := Parse(detected)
	if err != nil {
		r.Fail("invalid")
		return &ParseError{Field: env.VersionMacro, Input: detected, Err: cause(err)}
	}

	for _, c := range s {
		rv, err := Parse(c.Required)
		if err != nil {
			r.Fail("invalid")
			return &ParseError{Field: c.Kind.Key(), Input: c.Required, Err: cause(err)}
		}
		log.Debug().
			Str("detected", detected).
			Str("constraint", c.Kind.Key()).
			Str("required", c.Required).
			Msg("evaluating version constraint")
		if !c.Kind.Satisfied(mv, rv) {
			r.Fail(detected)
			return &ViolationError{Detected: detected, Kind: c.Kind, Required: c.Required}
		}
	}

	r.End(detected)
	return nil
}
