// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the analysis
// pipeline: matrix product, transpose, scalar scaling, trace and the Jacobi
// eigen-decomposition of symmetric matrices.
//
// Notes:
//   - Every kernel validates through validators.go and wraps failures with matrixErrorf(op, err).
//   - Inputs are never mutated; results are freshly allocated *Dense values.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opTrace     = "Trace"
	opEigen     = "Eigen"
	opToDense   = "toDense"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is already *Dense, otherwise a Dense copy
// built through At. Kernels that mutate a working copy call Clone on the result.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToDense, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Mul computes the matrix product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: Fast path for two *Dense operands in i→k→j order (row-major friendly);
//     fallback materializes both operands via toDense and reuses the same loop.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→k→j loop order; for any (i,j) the k-sum runs 0..n-1, so Gram
//     products XᵀX come out exactly symmetric.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Zero A[i,k] entries are skipped.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape; NaN/Inf propagate.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range dm.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Trace returns Σ m[i,i] for a square matrix.
// For a covariance matrix this is the total variance (sum of all eigenvalues).
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var sum, v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Materialize a *Dense working copy A and Q = I.
//   - Stage 3: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and apply a
//     Jacobi rotation to A, accumulating it into Q.
//   - Stage 4: Re-check the off-diagonal mass; extract diag(A) as eigenvalues.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on max |A[p,q]| (typ. 1e-9..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues, unordered (diagonal of the rotated matrix).
//   - Matrix: Q whose column k is the unit eigenvector for eigenvalue k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry,
//     ErrNaNInf (non-finite entries), ErrMatrixEigenFailed (not converged after maxIter).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter * n^2), Space O(n^2).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	// Stage 1: notNil; square; symmetric; finite.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Stage 2: working copy A and orthogonal accumulator Q.
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	A := src.Clone().(*Dense)
	n := A.r
	Q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		Q.data[i*n+i] = 1.0
	}

	// Stage 3: Jacobi rotations.
	var (
		iter               int
		p, q               int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		newIP, newIQ       float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: pivot (p,q) maximizing |A[p,q]|.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		// J.2: converged.
		if maxOff < tol {
			break
		}

		// J.3: rotation parameters.
		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/cols p and q of A.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			A.data[i*n+p], A.data[p*n+i] = newIP, newIP
			A.data[i*n+q], A.data[q*n+i] = newIQ, newIQ
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		// J.5: accumulate into Q.
		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Stage 4: final convergence check, then eigenvalues from diag(A).
	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(A.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.data[i*n+i]
	}

	return eigs, Q, nil
}
