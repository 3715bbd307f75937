// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/heartlens/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the non-*Dense (At-based) paths in code under test.
type hide struct{ matrix.Matrix }

// NewFilledDense allocates an r×c *Dense filled row-major from vals or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose fails the test unless a and b share a shape and
// |a-b| ≤ atol + rtol*|b| holds element-wise.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv = MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				t.Fatalf("(%d,%d): %g vs %g\n%v\nvs\n%v", i, j, av, bv, a, b)
			}
		}
	}
}

// identity returns I_n or fails the test.
func identity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	for i := 0; i < n; i++ {
		if err = I.Set(i, i, 1); err != nil {
			t.Fatalf("Set(%d,%d): %v", i, i, err)
		}
	}

	return I
}

// columnCovariance is the sample covariance of the columns of X, composed
// the way column-centered PCA builds it: CenterColumns, then ScatterMatrix.
func columnCovariance(tb testing.TB, X matrix.Matrix) (matrix.Matrix, []float64) {
	tb.Helper()
	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		tb.Fatalf("CenterColumns: %v", err)
	}
	C, err := matrix.ScatterMatrix(Xc)
	if err != nil {
		tb.Fatalf("ScatterMatrix: %v", err)
	}

	return C, means
}

// sliceClose fails the test unless |got[i]-want[i]| ≤ atol + rtol*|want[i]| for all i.
func sliceClose(t *testing.T, got, want []float64, rtol, atol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > atol+rtol*math.Abs(want[i]) {
			t.Fatalf("index %d: got %g, want %g", i, got[i], want[i])
		}
	}
}
