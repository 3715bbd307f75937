// SPDX-License-Identifier: MIT

// Package analysis runs the heart-disease pipeline end to end.
//
// Flow:
//
//	records ──Extract(ML)──► raw ──Standardize──► scaled ──PCA──► (x, y) per record
//	                          └──────────────────k-means──────────► cluster per record
//
// Both branches are zipped back onto the input by index. Clustering reads the
// raw matrix unless Options.ClusterOn selects the scaled one.
//
// Entry points:
//   - RunAnalysis(records, k): defaults, returns only the per-record results.
//   - New(opts, ...).Run(records): full Report with run id, spectrum,
//     convergence info, centroids and per-cluster summaries; logs through
//     zerolog and records Prometheus metrics when configured.
//
// Concurrency:
//
//	An Analyzer holds no per-run state; concurrent Run calls are safe unless
//	they share an injected kmeans.Source.
package analysis
