// SPDX-License-Identifier: MIT
// Package matrix provides pure operations on any Matrix implementation,
// including element-wise addition, subtraction and Hadamard product, matrix
// multiplication, transpose, scalar scaling, matrix-vector product, and the
// functional Map/Reduce pair. All functions perform strict fail-fast
// validation through the central validators and return clear errors on
// dimension mismatches.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 or i→j; i→k→j for the Mul fast path).
//   - *Dense operands unlock flat-slice fast paths; any other Matrix falls
//     back to the bounds-safe At/Set path with identical results.
//   - Exactly one result allocation per kernel; operands are never mutated.

package matrix

import "fmt"

// ZeroSum is the additive identity used to seed accumulation loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opHadamard = "Hadamard"
	opTrans    = "Transpose"
	opScale    = "Scale"
	opMatVec   = "MatVec"
	opMap      = "Map"
	opReduce   = "Reduce"
	opRowSums  = "RowSums"
	opColSums  = "ColSums"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// resultLike allocates a rows×cols result Dense, inheriting the numeric
// policy from src when src is a *Dense (single source of truth: results of
// an operation on policed data stay policed). Shape is assumed positive;
// callers validate operands first.
// Complexity: O(rows*cols).
func resultLike(src Matrix, rows, cols int) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if d, ok := src.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf // inherit guard policy
	}

	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation,
// allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result Dense(rows, cols).
//   - Stage 2: fast path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fall back to At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense.
	rows, cols := a.Rows(), a.Cols()
	res, err := resultLike(a, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv // write into owned buffer
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Inputs are never mutated; Add is commutative for same-shaped operands.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh
// Dense result. Not commutative; order matters.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// Shape equality is validated up front, exactly like Add/Sub; mismatches
// surface as ErrDimensionMismatch, never as an index error mid-loop.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Allocate result Dense.
	rows, cols := a.Rows(), a.Cols()
	res, err := resultLike(a, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast path: flat loop over both backing slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: if A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with left-to-right accumulation from 0.
//
// Behavior highlights:
//   - Every pairwise product is computed, zero factors included, so IEEE
//     float64 semantics hold: a NaN or ±Inf operand poisons its dot product
//     even when the matching factor is 0 (0*NaN = NaN).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := resultLike(a, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// Row-major multiplication into res.data:
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product left-to-right
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast path copies *Dense data via flat indexing; fallback uses At.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTrans, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := resultLike(m, cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTrans, err)
	}

	var i, j int // loop iterators
	// Fast path for Dense → Dense: data[i*cols+j] → res.data[j*rows+i].
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface path with fixed i→j order.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTrans, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix with every element multiplied by alpha.
// The operand is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := resultLike(m, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: single flat loop.
	if dm, ok := m.(*Dense); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback via At.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// MatVec computes the matrix-vector product y = M·x.
// x length must equal M.Cols(); the result has length M.Rows().
//
// Errors:
//   - ErrNilMatrix (nil matrix or nil vector), ErrDimensionMismatch
//     (len(x) != M.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	var i, j int
	var sum float64

	// Fast path: stride the flat buffer row by row.
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += dm.data[base+j] * x[j]
			}
			out[i] = sum
		}

		return out, nil
	}

	// Fallback via At.
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Map applies f to every cell in row-major order and returns a new matrix of
// identical dimensions holding the results. The operand is never mutated;
// cells are independent, so visit order is not observable in the result.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//   - ErrNaNInf when f produces a non-finite value and the source Dense
//     carries the finite-only policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Map(m Matrix, f func(i, j int, v float64) float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := resultLike(m, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	var i, j int
	var nv float64

	// Fast path: read the flat buffer directly, fixed i→j order.
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				nv = f(i, j, dm.data[base+j])
				if res.validateNaNInf && isNonFinite(nv) {
					return nil, matrixErrorf(opMap, fmt.Errorf("f(%d,%d): %w", i, j, ErrNaNInf))
				}
				res.data[base+j] = nv
			}
		}

		return res, nil
	}

	// Fallback via At.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMap, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = f(i, j, v)
		}
	}

	return res, nil
}

// Reduce folds f over every cell in row-major order (row 0 fully before
// row 1, left to right within a row), starting from init, and returns the
// final accumulator. Semantics mirror a left fold over the flattened
// row-major sequence of cells. The operand is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond the accumulator.
func Reduce[T any](m Matrix, f func(acc T, v float64, i, j int) T, init T) (T, error) {
	acc := init
	if err := ValidateNotNil(m); err != nil {
		return acc, matrixErrorf(opReduce, err)
	}

	rows, cols := m.Rows(), m.Cols()
	var i, j int

	// Fast path: walk the flat buffer with explicit coordinates.
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				acc = f(acc, dm.data[base+j], i, j)
			}
		}

		return acc, nil
	}

	// Fallback via At.
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return init, matrixErrorf(opReduce, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc = f(acc, v, i, j)
		}
	}

	return acc, nil
}

// RowSums returns the per-row sums of m as a slice of length m.Rows().
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	var i, j int
	var sum float64

	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += dm.data[base+j]
			}
			out[i] = sum
		}

		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v
		}
		out[i] = sum
	}

	return out, nil
}

// ColSums returns the per-column sums of m as a slice of length m.Cols().
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)
	var i, j int

	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ { // row-major accumulation into out
			base = i * cols
			for j = 0; j < cols; j++ {
				out[j] += dm.data[base+j]
			}
		}

		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[j] += v
		}
	}

	return out, nil
}
