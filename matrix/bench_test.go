// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

// benchDense allocates an n×n Dense or aborts the benchmark.
func benchDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}

	return m
}

// fillDenseRand fills m with deterministic pseudo-random values in [-1,1).
func fillDenseRand(b *testing.B, m *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n)
			B := benchDense(b, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkHadamard(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n)
			B := benchDense(b, n)
			fillDenseRand(b, A, 11)
			fillDenseRand(b, B, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Hadamard(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n)
			B := benchDense(b, n)
			fillDenseRand(b, A, 7)
			fillDenseRand(b, B, 13)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n)
			fillDenseRand(b, A, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n)
			fillDenseRand(b, A, 5)
			x := make([]float64, n)
			rng := rand.New(rand.NewSource(17))
			for i := range x {
				x[i] = rng.Float64()
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkReduceSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n)
			fillDenseRand(b, A, 23)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := matrix.Reduce(A, func(acc, v float64, _, _ int) float64 { return acc + v }, 0)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = s
			}
		})
	}
}
