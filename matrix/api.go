// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for the statistics kernels.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.

package matrix

// CenterColumns subtracts each column's mean (textbook PCA centering).
// Returns the centered copy and the column means.
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// CenterRows subtracts each row's own mean across its columns.
// Returns the centered copy and the row means.
func CenterRows(X Matrix) (Matrix, []float64, error) { return centerRows(X) }

// ScatterMatrix returns (Xcᵀ Xc)/(r-1) for an already centered Xc (r ≥ 2).
func ScatterMatrix(Xc Matrix) (Matrix, error) { return scatterMatrix(Xc) }

// StandardizeColumns z-scores every column with the population standard deviation.
// Constant columns become all zeros. Returns Z, the column means and the stds.
func StandardizeColumns(X Matrix) (Matrix, []float64, []float64, error) {
	return standardizeColumns(X)
}
