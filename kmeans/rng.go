// SPDX-License-Identifier: MIT

// Package kmeans - randomness used for centroid seeding and empty-cluster reseeding.
//
// Goals:
//   - Uniformity: initial centroids come from a Fisher–Yates permutation.
//   - Injectability: callers pass any Source (a *rand.Rand works) to script
//     or reproduce runs.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every Cluster call builds its own
//     stream unless the caller injects one, in which case sharing is the caller's problem.
package kmeans

import (
	"math/rand"
	"time"
)

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// sourceFromSeed returns a *rand.Rand for seed; seed==0 draws a seed from the clock.
//
// Complexity: O(1).
func sourceFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(s))
}

// permRange returns a uniform permutation of 0..n-1 (Fisher–Yates, i from n-1 down to 1).
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, src Source) []int {
	p := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j = src.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
