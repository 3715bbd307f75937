// SPDX-License-Identifier: MIT

package analysis

import (
	"github.com/katalvlaran/heartlens/kmeans"
	"github.com/katalvlaran/heartlens/pca"
)

// DefaultNumClusters is the k used by RunAnalysis callers that pass no preference.
const DefaultNumClusters = 3

// ClusterSpace selects the matrix fed to k-means.
type ClusterSpace int

const (
	// ClusterOnRaw clusters the unscaled feature matrix (default).
	ClusterOnRaw ClusterSpace = iota

	// ClusterOnScaled clusters the z-scored matrix that PCA also sees.
	ClusterOnScaled
)

// String implements fmt.Stringer.
func (c ClusterSpace) String() string {
	switch c {
	case ClusterOnRaw:
		return "raw"
	case ClusterOnScaled:
		return "scaled"
	default:
		return "unknown"
	}
}

// Options configures an Analyzer.
//
// Fields:
//   - NumClusters: k (≥1).
//   - MaxIterations: k-means pass cap (≥1).
//   - PCA: projection settings; Components is normally 2.
//   - ClusterOn: raw (default) or scaled features for k-means.
//   - Seed, Source : k-means randomness, see kmeans.Options.
type Options struct {
	NumClusters   int
	MaxIterations int
	PCA           pca.Options
	ClusterOn     ClusterSpace
	Seed          int64
	Source        kmeans.Source
}

// DefaultOptions returns k=3, 100 iterations, a 2-D row-centered PCA and raw clustering.
func DefaultOptions() Options {
	return Options{
		NumClusters:   DefaultNumClusters,
		MaxIterations: kmeans.DefaultMaxIterations,
		PCA:           pca.DefaultOptions(),
		ClusterOn:     ClusterOnRaw,
	}
}
