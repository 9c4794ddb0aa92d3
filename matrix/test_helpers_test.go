// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for the
//     dense type and the algebraic kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference unless a test enables the policy on purpose.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths in kernels;
// the wrapper still satisfies Matrix and forwards all methods.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from a rectangular grid or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows(%v)", rows)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// requireMatrixEqual asserts that got has exactly the expected grid of
// values (cell-by-cell, exact float comparison; fixtures use integer-valued
// floats so exactness is intentional).
func requireMatrixEqual(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, got, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// snapshot captures the full value grid of m for immutability assertions.
func snapshot(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}
