package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is invalid.
var (
	// ErrInvalidEmptyKeyPolicy indicates an unknown empty-key policy value
	// (only "reject" and "passthrough" are defined).
	ErrInvalidEmptyKeyPolicy = errors.New("invalid empty key policy")
	// ErrInvalidLogLevel indicates a log level zerolog cannot parse.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
