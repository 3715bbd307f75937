// SPDX-License-Identifier: MIT

// Package pca reduces a feature matrix to a few coordinates per row by
// projecting it onto the leading eigenvectors of its covariance matrix.
//
// Algorithm:
//  1. Center: by default each ROW has its own mean across features removed
//     (CenterRows). Textbook column centering is available as CenterColumns.
//  2. Cov = (Xcᵀ·Xc)/(N−1), an F×F symmetric matrix.
//  3. Jacobi eigen-decomposition (matrix.Eigen); all eigenvalues are real.
//  4. Rank eigenpairs by eigenvalue, descending.
//  5. Project: Coordinates = Xc · [v₀ … v_{n−1}].
//
// Notes:
//   - Row centering makes every row of Xc sum to zero, so the all-ones vector
//     is always in the null space and Cov has at least one zero eigenvalue.
//     A singular Cov is therefore normal here; only zero total variance is
//     treated as degenerate.
//   - Eigenvector signs are whatever Jacobi produces; coordinates may flip
//     sign between implementations without changing the geometry.
//
// Complexity:
//
//	O(N·F²) for the covariance plus O(iter·F²) for Jacobi. F is 10 in the
//	heart-disease pipeline, so the cost is dominated by N.
package pca
