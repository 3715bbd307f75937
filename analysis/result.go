// SPDX-License-Identifier: MIT

package analysis

import (
	"time"

	"github.com/katalvlaran/heartlens/features"
)

// Point is a 2-D PCA coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Result is one input record enriched with its cluster id and PCA coordinate.
// The embedded Record flattens into the JSON object.
type Result struct {
	features.Record
	Cluster int   `json:"cluster"`
	PCA     Point `json:"pca"`
}

// Report is the full outcome of Analyzer.Run.
// Centroids live in the space named by ClusterOn.
type Report struct {
	RunID             string        `json:"run_id"`
	GeneratedAt       time.Time     `json:"generated_at"`
	Elapsed           time.Duration `json:"elapsed_ns"`
	NumClusters       int           `json:"num_clusters"`
	Features          []string      `json:"features"`
	Centering         string        `json:"centering"`
	ClusterOn         string        `json:"cluster_on"`
	ExplainedVariance []float64     `json:"explained_variance"`
	Iterations        int           `json:"iterations"`
	Converged         bool          `json:"converged"`
	Inertia           float64       `json:"inertia"`
	Centroids         [][]float64   `json:"centroids"`
	Summary           Summary       `json:"summary"`
	Results           []Result      `json:"results"`
}
