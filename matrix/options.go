// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// ingestion (NewDenseFromRows) and Map results.
	//
	// Default is OFF: a freshly constructed Dense accepts any float64, and
	// the only errors observable through the default surface are the three
	// structural sentinels (ErrInvalidDimensions, ErrIndexOutOfBounds,
	// ErrDimensionMismatch). Enable via WithValidateNaNInf(true) when the
	// data flow must stay finite.
	DefaultValidateNaNInf = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // reject NaN/±Inf on writes when true
}

// WithValidateNaNInf toggles strict finite-value validation on writes.
// When enabled, Set, NewDenseFromRows and Map reject NaN and ±Inf with
// ErrNaNInf; the policy flag is carried by Clone and by kernel results
// derived from the receiving Dense.
// Complexity: O(1).
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// gatherOptions resolves defaults and applies setters in order.
// Later options win; the zero Options mirrors the Default* constants.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
// Kept as the single helper for the numeric policy checks.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
