// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions is returned by constructors when a requested or
	// supplied grid has fewer than one row or column, or when a supplied
	// grid is jagged (rows of unequal length). The jagged branch carries a
	// distinguishing context wrap at the detection site.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the valid [0,rows) / [0,cols) range. Public indexers (At/Set/Row/Col)
	// MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub/Hadamard with different shapes, or Mul where
	// a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was
	// handed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, ingestion, Map).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
