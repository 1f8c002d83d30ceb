package constraint

import "fmt"

// Kind is the comparison a constraint requests.
type Kind int

const (
	AtLeast Kind = iota // detected >= required
	Exact               // detected == required
	AtMost              // detected <= required
)

// Kinds lists every kind in canonical order.
var Kinds = []Kind{AtLeast, Exact, AtMost}

// Key returns the recipe/keyword spelling of k.
func (k Kind) Key() string {
	switch k {
	case AtLeast:
		return "atleast_version"
	case Exact:
		return "exact_version"
	case AtMost:
		return "max_version"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) String() string {
	return k.Key()
}

// KindFromKey maps "atleast_version", "exact_version" or "max_version"
// back to a Kind.
func KindFromKey(key string) (Kind, error) {
	for _, k := range Kinds {
		if k.Key() == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown version constraint %q (want atleast_version, exact_version or max_version)", key)
}

// Satisfied reports whether detected relates to required as k demands.
func (k Kind) Satisfied(detected, required Version) bool {
	c := detected.Compare(required)
	switch k {
	case AtLeast:
		return c >= 0
	case Exact:
		return c == 0
	case AtMost:
		return c <= 0
	}
	return false
}
