// Package constraint parses MySQL version strings and checks them against
// at-least / exact / at-most requirements.
//
// Versions compare as integer tuples: element by element, then by length.
// A version that is a strict prefix of another is smaller, so "5.7" sorts
// before "5.7.0" and exact_version=5.7 does not match a 5.7.0 server.
// Callers that mean "any 5.7" should write at-least/at-most bounds.
package constraint

import (
	"strconv"
	"strings"
)

// Version is a dot-separated sequence of non-negative integers.
type Version []int

// Parse parses s ("5.7.10") into a Version. Each component must be a
// non-empty run of ASCII digits; anything else is an error.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	v := make(Version, 0, len(parts))
	for _, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return nil, &ParseError{Input: s}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, &ParseError{Input: s, Err: err}
		}
		v = append(v, n)
	}
	return v, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or +1 as v is less than, equal to, or greater
// than w.
func (v Version) Compare(w Version) int {
	for i := 0; i < len(v) && i < len(w); i++ {
		switch {
		case v[i] < w[i]:
			return -1
		case v[i] > w[i]:
			return 1
		}
	}
	switch {
	case len(v) < len(w):
		return -1
	case len(v) > len(w):
		return 1
	}
	return 0
}

func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
