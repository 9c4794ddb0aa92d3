// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return plain sentinel errors (wrapped only with the validator tag) so
//    call sites can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – composite: NotNil(a) → NotNil(b) → SameShape.
// Used by Add/Sub/Hadamard kernels.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – composite: NotNil(a) → NotNil(b) → inner match.
// Multiplication requires a.Cols() == b.Rows() (a is m×n, b is n×p).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Used by MatVec-like operations to avoid ad hoc length code.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateRectangular checks a caller-supplied grid at construction time:
// at least one row, at least one column, and every row exactly as long as
// the first. Empty grids return the plain ErrInvalidDimensions sentinel;
// jagged grids wrap it with the offending row. The constructor adds its own
// context on top.
// Complexity: O(len(rows)).
func validateRectangular(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			// Jagged input: all dimensions may be positive, so name the
			// offending row instead of implying a non-positive size.
			return fmt.Errorf("jagged row %d (len %d, want %d): %w", i, len(rows[i]), cols, ErrInvalidDimensions)
		}
	}

	return nil
}

// SameShape reports whether a and b have identical dimensions.
// Nil operands are never same-shaped.
// Complexity: O(1).
func SameShape(a, b Matrix) bool {
	if a == nil || b == nil {
		return false
	}

	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// MulCompatible reports whether the product a×b is defined
// (a.Cols() == b.Rows()). Nil operands are never compatible.
// Complexity: O(1).
func MulCompatible(a, b Matrix) bool {
	if a == nil || b == nil {
		return false
	}

	return a.Cols() == b.Rows()
}
