// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Ownership:
//   - A Dense exclusively owns its buffer. Constructors copy caller input;
//     Row/Col return fresh slices; Clone allocates independent storage.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFromRows: O(r*c); At/Set/ContainsIndex: O(1);
//     Row: O(c); Col: O(r); Clone/String/Do: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1 after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection on writes (policy
//     default from options.go).
type Dense struct {
	r, c           int       // row and column counts (immutable after construction)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements the public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows > 0 && cols > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (make() zero-fills deterministically).
//   - Stage 3: resolve numeric policy from opts.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFromRows copies a caller-supplied rectangular grid into a new Dense.
//
// Implementation:
//   - Stage 1: validate the grid (non-empty, non-empty first row, rectangular).
//   - Stage 2: allocate the flat buffer and copy row by row (deep copy; the
//     result never aliases the caller's slices).
//   - Stage 3: enforce the numeric policy over the ingested values when enabled.
//
// Behavior highlights:
//   - Jagged input is rejected up front; flat row-major storage cannot
//     represent it, so construction is the only sensible failure point.
//
// Errors:
//   - ErrInvalidDimensions (empty or jagged grid).
//   - ErrNaNInf (non-finite entry, only when WithValidateNaNInf(true)).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	// Validate grid shape via the central validator.
	if err := validateRectangular(rows); err != nil {
		return nil, fmt.Errorf("NewDenseFromRows: %w", err)
	}
	o := gatherOptions(opts...)

	r, c := len(rows), len(rows[0])
	buf := make([]float64, r*c)
	var i int
	for i = 0; i < r; i++ {
		// Numeric policy: scan the row before committing it.
		if o.validateNaNInf {
			for j := 0; j < c; j++ {
				if isNonFinite(rows[i][j]) {
					return nil, fmt.Errorf("NewDenseFromRows(%d,%d): %w", i, j, ErrNaNInf)
				}
			}
		}
		copy(buf[i*c:(i+1)*c], rows[i]) // deep copy, no aliasing
	}

	return &Dense{
		r:              r,
		c:              c,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// ContainsIndex reports whether (row, col) addresses a cell of the matrix,
// i.e. 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Complexity: O(1).
func (m *Dense) ContainsIndex(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// Returns the plain sentinel; public methods (At/Set) wrap with coordinates
// and method name. Kept unexported to avoid accidental panics at the public
// surface.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// Never panics on out-of-range; returns the sentinel wrapped with context.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// This is the only operation with an observable side effect on its receiver,
// and it mutates exactly one cell.
//
// Errors:
//   - ErrIndexOutOfBounds for bounds; ErrNaNInf for non-finite values when
//     the numeric policy is enabled.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a defensive copy of row i.
// The returned slice shares no storage with the matrix; mutating it never
// affects the receiver.
//
// Errors:
//   - ErrIndexOutOfBounds when i < 0 or i >= Rows().
//
// Complexity: O(c) time and space.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c]) // contiguous row block

	return out, nil
}

// Col returns a defensive copy of column j, one value per row.
// The returned slice shares no storage with the matrix.
//
// Errors:
//   - ErrIndexOutOfBounds when j < 0 or j >= Cols().
//
// Complexity: O(r) time and space.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ { // strided walk down the column
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Independence: mutations of the clone do not affect the original and
// vice versa. The returned dynamic type is *Dense.
// Complexity: O(r*c) time and space.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false. No allocations;
// deterministic i→j order.
// Complexity: O(r*c) time, O(1) space.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String provides a readable row-wise dump for diagnostics.
// Fixed traversal order; not for hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
