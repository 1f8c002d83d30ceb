// errors.go
package mysqlprobe

import "github.com/arc-language/mysqlprobe/pkg/core"

var (
	// ErrInvalidOverride indicates a user supplied path failed validation
	ErrInvalidOverride = core.ErrInvalidOverride

	// ErrDiscoveryFailure indicates a helper-derived or default path failed validation
	ErrDiscoveryFailure = core.ErrDiscoveryFailure

	// ErrProbeFailure indicates the version probe could not be compiled or run
	ErrProbeFailure = core.ErrProbeFailure

	// ErrVersionParse indicates a malformed version string
	ErrVersionParse = core.ErrVersionParse

	// ErrConstraintViolation indicates the server version fails a constraint
	ErrConstraintViolation = core.ErrConstraintViolation
)

// Error wraps an error with the check and path that produced it
type Error = core.Error
