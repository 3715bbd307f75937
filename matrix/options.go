// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults.
//
// Purpose:
//   - Keep every tolerance and iteration cap used by the kernels in one place.
//   - Callers that need different limits pass them explicitly (e.g. Eigen(m, tol, maxIter)).

package matrix

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// NewDenseFromRows.
	DefaultValidateNaNInf = true

	// DefaultEigenTol is the off-diagonal threshold at which Jacobi stops.
	DefaultEigenTol = 1e-10

	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	// One rotation zeroes one off-diagonal pair; n≈10 needs a few hundred.
	DefaultEigenMaxIter = 10000
)
