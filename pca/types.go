// SPDX-License-Identifier: MIT

package pca

import (
	"errors"

	"github.com/katalvlaran/heartlens/matrix"
)

var (
	// ErrEmptyInput indicates a nil input matrix.
	ErrEmptyInput = errors.New("pca: empty input")

	// ErrInvalidComponents indicates Components < 1 or Components > number of columns.
	ErrInvalidComponents = errors.New("pca: components must be in [1, columns]")

	// ErrDegenerate indicates the covariance spectrum cannot be used: fewer than
	// two rows, zero total variance, non-finite entries, or a Jacobi run that
	// did not converge.
	ErrDegenerate = errors.New("pca: degenerate covariance")
)

// Centering selects how the input is centered before forming the covariance.
type Centering int

const (
	// CenterRows subtracts each row's own mean across its features.
	// This is the pipeline default.
	CenterRows Centering = iota

	// CenterColumns subtracts each feature's mean across records (textbook PCA).
	CenterColumns
)

// String implements fmt.Stringer.
func (c Centering) String() string {
	switch c {
	case CenterRows:
		return "rows"
	case CenterColumns:
		return "columns"
	default:
		return "unknown"
	}
}

// Options configures Reduce.
//
// Fields:
//   - Components: number of output coordinates per row (1..F).
//   - Centering: CenterRows (default) or CenterColumns.
//   - EigenTol: Jacobi off-diagonal threshold; also the symmetry tolerance.
//   - EigenMaxIter: Jacobi rotation cap.
type Options struct {
	Components   int
	Centering    Centering
	EigenTol     float64
	EigenMaxIter int
}

// DefaultOptions returns a 2-D projection with row centering and the matrix
// package's eigen defaults.
func DefaultOptions() Options {
	return Options{
		Components:   2,
		Centering:    CenterRows,
		EigenTol:     matrix.DefaultEigenTol,
		EigenMaxIter: matrix.DefaultEigenMaxIter,
	}
}

// EigenPair is one eigenvalue of the covariance matrix with its unit eigenvector
// (length F). The sign of Vector is not normalized.
type EigenPair struct {
	Value  float64
	Vector []float64
}

// Result holds the projection and the full ranked spectrum.
//   - Coordinates: N×Components projected rows.
//   - Pairs: all F eigenpairs, eigenvalue descending.
//   - TotalVariance: trace of the covariance matrix (Σ of all eigenvalues).
type Result struct {
	Coordinates   *matrix.Dense
	Pairs         []EigenPair
	TotalVariance float64
	Components    int
}

// ExplainedVariance returns Pairs[i].Value / TotalVariance for the selected components.
func (r Result) ExplainedVariance() []float64 {
	out := make([]float64, r.Components)
	if r.TotalVariance == 0 {
		return out
	}
	for i := 0; i < r.Components && i < len(r.Pairs); i++ {
		out[i] = r.Pairs[i].Value / r.TotalVariance
	}

	return out
}

// Retained returns Σ of the selected eigenvalues. It never exceeds
// TotalVariance beyond rounding, and equals it when Components == F.
func (r Result) Retained() float64 {
	var s float64
	for i := 0; i < r.Components && i < len(r.Pairs); i++ {
		s += r.Pairs[i].Value
	}

	return s
}
