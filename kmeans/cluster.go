// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/heartlens/matrix"
)

func kmeansErrorf(err error) error {
	return fmt.Errorf("kmeans: cluster: %w", err)
}

// Cluster partitions the rows of m into k groups by Euclidean distance.
//
// Implementation:
//   - Stage 1: Validate m, k and MaxIterations; copy rows out of m.
//   - Stage 2: Seed: shuffle row indices (Fisher–Yates) and copy the first k rows.
//     When k exceeds the row count the extra centroids copy uniformly random rows.
//   - Stage 3: Loop up to MaxIterations:
//     assign every row to the nearest centroid (strict <, first index wins ties);
//     if the assignment equals the previous one, stop without updating;
//     otherwise move each centroid to the mean of its members, reseeding an
//     empty cluster to a copy of a uniformly random row.
//   - Stage 4: Inertia against the returned centroids.
//
// Errors:
//   - ErrEmptyInput, ErrInvalidK, ErrInvalidIterations, matrix read errors.
//
// Determinism:
//   - Given the same Source stream the result is bit-identical.
//
// Complexity:
//   - Time O(iter·N·k·F), Space O(N·F + k·F).
func Cluster(m matrix.Matrix, k int, opts Options) (Result, error) {
	// Stage 1: validation.
	if err := matrix.ValidateNotNil(m); err != nil || m.Rows() == 0 {
		return Result{}, kmeansErrorf(ErrEmptyInput)
	}
	if k < 1 {
		return Result{}, kmeansErrorf(ErrInvalidK)
	}
	if opts.MaxIterations < 1 {
		return Result{}, kmeansErrorf(ErrInvalidIterations)
	}
	rows, err := copyRows(m)
	if err != nil {
		return Result{}, kmeansErrorf(err)
	}
	n := len(rows)
	src := opts.Source
	if src == nil {
		src = sourceFromSeed(opts.Seed)
	}

	// Stage 2: seeding.
	perm := permRange(n, src)
	centroids := make([][]float64, k)
	for c := 0; c < k; c++ {
		if c < n {
			centroids[c] = slices.Clone(rows[perm[c]])
		} else {
			centroids[c] = slices.Clone(rows[src.Intn(n)])
		}
	}

	// Stage 3: assign / update.
	var (
		assignments []int
		res         Result
	)
	for iter := 0; iter < opts.MaxIterations; iter++ {
		next := assign(rows, centroids)
		res.Iterations = iter + 1
		if assignments != nil && slices.Equal(assignments, next) {
			res.Converged = true
			break
		}
		assignments = next
		centroids = update(rows, assignments, k, src)
	}

	// Stage 4: finalize.
	res.Assignments = assignments
	res.Centroids = centroids
	var d float64
	for i, row := range rows {
		d = floats.Distance(row, centroids[assignments[i]], 2)
		res.Inertia += d * d
	}

	return res, nil
}

// assign maps every row to the index of its nearest centroid.
// Strict < keeps the first centroid on exact ties.
func assign(rows, centroids [][]float64) []int {
	out := make([]int, len(rows))
	var (
		best, d float64
		bestIdx int
	)
	for i, row := range rows {
		bestIdx = 0
		best = floats.Distance(row, centroids[0], 2)
		for c := 1; c < len(centroids); c++ {
			if d = floats.Distance(row, centroids[c], 2); d < best {
				best, bestIdx = d, c
			}
		}
		out[i] = bestIdx
	}

	return out
}

// update returns the member mean of every cluster; empty clusters get a copy
// of a uniformly random row.
func update(rows [][]float64, assignments []int, k int, src Source) [][]float64 {
	f := len(rows[0])
	sums := make([][]float64, k)
	counts := make([]int, k)
	for c := range sums {
		sums[c] = make([]float64, f)
	}
	for i, row := range rows {
		c := assignments[i]
		floats.Add(sums[c], row)
		counts[c]++
	}

	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			sums[c] = slices.Clone(rows[src.Intn(len(rows))])
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
	}

	return sums
}

// copyRows materializes m as an owned [][]float64.
func copyRows(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	var err error
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
