// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms the analysis pipeline is built from
//     (centering, covariance, z-scoring) as deterministic compositions over
//     canonical kernels (Mul/Transpose/Scale) and ew* micro-kernels.
//
// Exposed API (see api.go):
//   - CenterColumns(X)      -> (Xc, means)       // subtract per-column mean
//   - CenterRows(X)         -> (Xc, means)       // subtract per-row mean
//   - ScatterMatrix(Xc)     -> Cov               // (Xcᵀ Xc)/(r-1) for an already centered Xc
//   - StandardizeColumns(X) -> (Z, means, stds)  // population z-score; constant column → zeroed
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns      = "CenterColumns"
	opCenterRows         = "CenterRows"
	opScatterMatrix      = "ScatterMatrix"
	opStandardizeColumns = "StandardizeColumns"
	opColumnMeans        = "ColumnMeans"
)

// columnMeans returns Σ_i X[i,j] / r for every column j.
// Complexity: O(r*c) time, O(c) space.
func columnMeans(X Matrix) ([]float64, error) {
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := d.r, d.c
	means := make([]float64, c)

	var i, j int
	for i = 0; i < r; i++ { // deterministic row order
		base := i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means in a deterministic pass.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// centerRows subtracts the per-row mean from every element (row-wise centering).
// Every row of the result sums to zero, so the all-ones vector lies in the
// null space of any covariance built from it.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: row means (len=r).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(r) means).
func centerRows(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	r, c := d.r, d.c
	means := make([]float64, r)

	var i, j int
	var s float64
	for i = 0; i < r; i++ {
		s = 0.0
		base := i * c
		for j = 0; j < c; j++ {
			s += d.data[base+j]
		}
		means[i] = s / float64(c)
	}

	Xc, err := ewBroadcastSubRows(d, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return Xc, means, nil
}

// scatterMatrix computes (Xcᵀ Xc)/(r-1) for an already centered Xc.
// The centering rule is the caller's choice (rows or columns); this kernel
// only forms the normalized Gram matrix.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when r<2 (sample denominator would be ≤0).
//
// Complexity:
//   - Time O(r*c^2), Space O(c^2).
func scatterMatrix(Xc Matrix) (Matrix, error) {
	if err := ValidateNotNil(Xc); err != nil {
		return nil, matrixErrorf(opScatterMatrix, err)
	}
	r := Xc.Rows()
	if r < 2 {
		return nil, matrixErrorf(opScatterMatrix, ErrDimensionMismatch)
	}

	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, matrixErrorf(opScatterMatrix, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, matrixErrorf(opScatterMatrix, err)
	}
	S, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, matrixErrorf(opScatterMatrix, err)
	}

	return S, nil
}

// standardizeColumns z-scores every column with the POPULATION standard deviation:
// Z[i,j] = (X[i,j] − μⱼ)/σⱼ with σⱼ = sqrt(Σ_i (X[i,j]−μⱼ)² / r).
// A constant column (every X[i,j] == X[0,j]) becomes all zeros and reports σⱼ = 0,
// whatever rounding residue centering leaves behind. Any other column is scaled,
// however small its spread relative to its mean.
//
// Implementation:
//   - Stage 1: Validate X; flag constant columns by exact comparison with row 0.
//   - Stage 2: Center columns; accumulate squared deviations; σ = sqrt(sumsq/r).
//   - Stage 3: invStd = 1/σ (0 for constant columns); Z = Xc * diag(invStd) via ewScaleCols.
//
// Returns:
//   - Matrix: Z (r×c).
//   - []float64: column means.
//   - []float64: column population stds.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func standardizeColumns(X Matrix) (Matrix, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	// Stage 1: exact constant-column detection.
	r, c := src.r, src.c
	constant := make([]bool, c)
	var i, j int
	for j = 0; j < c; j++ {
		constant[j] = true
	}
	for i = 1; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			if constant[j] && src.data[base+j] != src.data[j] {
				constant[j] = false
			}
		}
	}

	// Stage 2: centered copy and population stds.
	Xc, means, err := centerColumns(src)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}
	d, err := toDense(Xc)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}
	sumsq := make([]float64, c)
	var v float64
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v = d.data[base+j]
			sumsq[j] += v * v
		}
	}

	// Stage 3: scale.
	stds := make([]float64, c)
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		if constant[j] {
			continue // invStd stays 0 and zeroes the column
		}
		stds[j] = math.Sqrt(sumsq[j] / float64(r))
		invStd[j] = 1.0 / stds[j]
	}

	Z, err := ewScaleCols(d, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	return Z, means, stds, nil
}
