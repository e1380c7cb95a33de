package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoBaseURL is returned when the base documentation URL is empty.
	ErrNoBaseURL = errors.New("no base documentation URL configured")

	// ErrNoPEPURL is returned when the PEP index URL is empty.
	ErrNoPEPURL = errors.New("no PEP index URL configured")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidOutputMode is returned when --output is not one of the
	// supported modes (pretty, file, or empty for plain).
	ErrInvalidOutputMode = errors.New(`invalid output mode: must be "pretty" or "file"`)
)
