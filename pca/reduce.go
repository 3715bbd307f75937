// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/heartlens/matrix"
)

// pcaErrorf tags err with the reduction stage, keeping the sentinel reachable.
func pcaErrorf(stage string, err error) error {
	return fmt.Errorf("pca: %s: %w", stage, err)
}

// degenerate wraps cause under ErrDegenerate so both match with errors.Is.
func degenerate(stage string, cause error) error {
	return pcaErrorf(stage, fmt.Errorf("%w: %w", ErrDegenerate, cause))
}

// Reduce projects the rows of m onto the top opts.Components principal axes.
//
// Implementation:
//   - Stage 1: Validate options and shape (N ≥ 2, 1 ≤ Components ≤ F).
//   - Stage 2: Center (rows or columns) → Xc.
//   - Stage 3: Cov = (Xcᵀ·Xc)/(N−1); reject zero total variance.
//   - Stage 4: Jacobi eigen-decomposition; rank pairs by eigenvalue descending
//     with a stable sort (equal eigenvalues keep decomposition order).
//   - Stage 5: P = [v₀ … v_{n−1}] (F×n); Coordinates = Xc·P.
//
// Errors:
//   - ErrEmptyInput, ErrInvalidComponents, ErrDegenerate (wrapping the matrix cause).
//
// Complexity:
//   - Time O(N·F² + iter·F² + N·F·n), Space O(N·F + F²).
func Reduce(m matrix.Matrix, opts Options) (Result, error) {
	// Stage 1: validation.
	if err := matrix.ValidateNotNil(m); err != nil {
		return Result{}, pcaErrorf("validate", ErrEmptyInput)
	}
	n, f := m.Rows(), m.Cols()
	if opts.Components < 1 || opts.Components > f {
		return Result{}, pcaErrorf("validate", ErrInvalidComponents)
	}
	if n < 2 {
		return Result{}, degenerate("validate", matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return Result{}, degenerate("validate", err)
	}

	// Stage 2: centering.
	var (
		Xc  matrix.Matrix
		err error
	)
	switch opts.Centering {
	case CenterColumns:
		Xc, _, err = matrix.CenterColumns(m)
	default:
		Xc, _, err = matrix.CenterRows(m)
	}
	if err != nil {
		return Result{}, pcaErrorf("center", err)
	}

	// Stage 3: covariance and its trace.
	cov, err := matrix.ScatterMatrix(Xc)
	if err != nil {
		return Result{}, pcaErrorf("covariance", err)
	}
	total, err := matrix.Trace(cov)
	if err != nil {
		return Result{}, pcaErrorf("covariance", err)
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return Result{}, degenerate("covariance", errors.New("zero total variance"))
	}

	// Stage 4: eigen-decomposition and ranking.
	values, Q, err := matrix.Eigen(cov, opts.EigenTol, opts.EigenMaxIter)
	if err != nil {
		return Result{}, degenerate("eigen", err)
	}
	pairs := make([]EigenPair, f)
	var i, j int
	for j = 0; j < f; j++ {
		vec := make([]float64, f)
		for i = 0; i < f; i++ {
			vec[i], _ = Q.At(i, j) // Q is f×f
		}
		pairs[j] = EigenPair{Value: values[j], Vector: vec}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].Value > pairs[b].Value })

	// Stage 5: projection.
	P, err := matrix.NewDense(f, opts.Components)
	if err != nil {
		return Result{}, pcaErrorf("project", err)
	}
	for j = 0; j < opts.Components; j++ {
		for i = 0; i < f; i++ {
			if err = P.Set(i, j, pairs[j].Vector[i]); err != nil {
				return Result{}, pcaErrorf("project", err)
			}
		}
	}
	Y, err := matrix.Mul(Xc, P)
	if err != nil {
		return Result{}, pcaErrorf("project", err)
	}

	return Result{
		Coordinates:   Y.(*matrix.Dense),
		Pairs:         pairs,
		TotalVariance: total,
		Components:    opts.Components,
	}, nil
}
