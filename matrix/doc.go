// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra core used by heartlens.
//
// What & Why:
//
//	A small, dependency-free set of kernels over a row-major Dense matrix:
//	product, transpose, scaling, trace, row/column centering, covariance,
//	population z-scoring and a Jacobi eigen-solver for symmetric matrices.
//	PCA and k-means are built on top of these in sibling packages.
//
// Guarantees:
//
//   - Inputs are never mutated; every kernel returns a fresh *Dense.
//   - Public accessors return sentinel errors (errors.go) instead of panicking.
//   - Loop orders are fixed, so identical inputs give bit-identical outputs.
//
// Complexity:
//
//	At/Set are O(1); Mul is O(r·n·c); Eigen is O(maxIter·n²).
package matrix
