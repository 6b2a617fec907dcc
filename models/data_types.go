package models

// EmptyKeyPolicy selects what the cipher engine does when the normalized
// key contains no letters at encipher time.
// The value is set once at startup through configuration.
type EmptyKeyPolicy string

const (
	// EmptyKeyReject makes the engine fail fast with an empty-key error.
	// This is the default policy.
	EmptyKeyReject EmptyKeyPolicy = "reject"

	// EmptyKeyPassThrough makes the engine return the plain text unchanged
	// (a copy of it; the input buffer is never aliased).
	EmptyKeyPassThrough EmptyKeyPolicy = "passthrough"
)

// Valid reports whether p is one of the defined policies.
func (p EmptyKeyPolicy) Valid() bool {
	return p == EmptyKeyReject || p == EmptyKeyPassThrough
}
