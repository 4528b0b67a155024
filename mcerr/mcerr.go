// Package mcerr defines the three error kinds shared across the maximum
// clique suite (spec §7): InvalidInput, OutOfRange, and ResourceExhausted.
// Every package-local sentinel in this module wraps one of these with %w,
// so callers can branch either on the precise sentinel (e.g.
// core.ErrVertexOutOfRange) or on the coarse kind (mcerr.ErrOutOfRange) via
// errors.Is — the same two-tier sentinel discipline lvlath uses per
// package, generalized with one shared top tier.
//
// Cancellation is deliberately not one of these kinds: a caller-supplied
// context tripping mid-search is not an input error, so it is surfaced
// through Result.Proven=false rather than an error return (spec §7's
// propagation policy) — see clique.FindMaximumClique.
package mcerr

import "errors"

var (
	// ErrInvalidInput marks malformed input the caller must fix: a
	// negative vertex ID, an unparsable edge-list line, and similar.
	ErrInvalidInput = errors.New("mcerr: invalid input")

	// ErrOutOfRange marks a query against a vertex not in [0,n).
	ErrOutOfRange = errors.New("mcerr: out of range")

	// ErrResourceExhausted marks a request that exceeds a fixed resource
	// ceiling this module enforces up front, e.g. a bitset domain wider
	// than the fixed maximum width bitset.New accepts.
	ErrResourceExhausted = errors.New("mcerr: resource exhausted")
)
