// SPDX-License-Identifier: MIT

// Package matrix provides a minimal, safe dense-matrix value type.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors
//     (At/Set return errors, never panic on user input).
//   - Pure algebraic kernels (Add, Sub, Mul, Hadamard, Transpose, Scale,
//     MatVec, Map, Reduce) that allocate a fresh result and never mutate
//     their operands.
//   - Defensive Row/Col extraction: returned slices are copies, never views
//     into the backing store.
//
// Every matrix exclusively owns its storage; the only mutating operation is
// Set, which touches a single cell of its receiver. Instances are therefore
// safe for concurrent reads; callers mixing Set with concurrent use must
// synchronize externally.
//
// Errors are package-level sentinels (ErrInvalidDimensions,
// ErrIndexOutOfBounds, ErrDimensionMismatch, ErrNilMatrix, ErrNaNInf)
// matched via errors.Is; call sites attach method/operation context with %w.
package matrix
