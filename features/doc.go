// SPDX-License-Identifier: MIT

// Package features defines the fixed-schema heart-disease record and the
// ordered feature lists that turn a record set into a numeric matrix.
//
// What & Why:
//
//	Every column the pipeline reads is a Feature value: a stable name (the CSV
//	header) plus compile-time accessors into Record. Selecting columns is a
//	matter of passing a []Feature, so a misspelled column is a build error,
//	not a silent zero.
//
// Lists:
//
//   - All: the 14 dataset columns in file order.
//   - ML: the 10 columns used for PCA and clustering, in matrix column order.
//   - Profile: the 5 continuous columns summarized per cluster.
//
// Usage:
//
//	X, err := features.Extract(records, features.ML)
//	// X is N×10, column j = features.ML[j]
package features
