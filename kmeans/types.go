// SPDX-License-Identifier: MIT

package kmeans

import "errors"

var (
	// ErrEmptyInput indicates a nil or zero-row input matrix.
	ErrEmptyInput = errors.New("kmeans: empty input")

	// ErrInvalidK indicates k < 1.
	ErrInvalidK = errors.New("kmeans: k must be >= 1")

	// ErrInvalidIterations indicates MaxIterations < 1.
	ErrInvalidIterations = errors.New("kmeans: max iterations must be >= 1")
)

// DefaultMaxIterations bounds the assign/update loop.
const DefaultMaxIterations = 100

// Options configures Cluster.
//
// Fields:
//   - MaxIterations: cap on assignment passes (default 100). Hitting it is not an error.
//   - Seed: seeds the internal RNG when Source is nil; 0 means clock-seeded.
//   - Source: injected randomness; takes precedence over Seed.
type Options struct {
	MaxIterations int
	Seed          int64
	Source        Source
}

// DefaultOptions returns MaxIterations=100 with a clock-seeded RNG.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// Result is the outcome of one k-means run.
//   - Assignments: cluster id in [0,k) per input row.
//   - Centroids: k vectors of length F.
//   - Iterations: assignment passes performed (≥1).
//   - Converged: true when the last pass reproduced the previous assignment.
//   - Inertia: Σ squared distance of each row to its assigned centroid.
type Result struct {
	Assignments []int
	Centroids   [][]float64
	Iterations  int
	Converged   bool
	Inertia     float64
}

// Sizes returns the member count of every cluster (len == len(Centroids)).
func (r Result) Sizes() []int {
	out := make([]int, len(r.Centroids))
	for _, c := range r.Assignments {
		if c >= 0 && c < len(out) {
			out[c]++
		}
	}

	return out
}
