// SPDX-License-Identifier: MIT

package analysis

import "github.com/katalvlaran/heartlens/features"

// Labels for the categorical breakdowns in Summary. Index i of a count row
// corresponds to label i.
var (
	AgeBands        = []string{"30-39", "40-49", "50-59", "60-69", "70+"}
	SexLabels       = []string{"male", "female"}
	ChestPainLabels = []string{"typical angina", "atypical angina", "non-anginal pain", "asymptomatic"}
)

// ClusterProfile holds the mean of every features.Profile column over the
// members of one non-empty cluster.
type ClusterProfile struct {
	Cluster int       `json:"cluster"`
	Size    int       `json:"size"`
	Means   []float64 `json:"means"`
}

// Summary aggregates results per cluster. Count tables are indexed
// [cluster][category].
type Summary struct {
	ProfileFeatures []string         `json:"profile_features"`
	Profiles        []ClusterProfile `json:"profiles"`
	Counts          []int            `json:"counts"`
	Proportions     []float64        `json:"proportions"`
	AgeHistogram    [][]int          `json:"age_histogram"`
	SexIncidence    [][]int          `json:"sex_incidence"`
	ChestPain       [][]int          `json:"chest_pain"`
}

// ageBand maps an age onto AgeBands; anything under 40 lands in the first band.
func ageBand(age float64) int {
	switch {
	case age < 40:
		return 0
	case age < 50:
		return 1
	case age < 60:
		return 2
	case age < 70:
		return 3
	default:
		return 4
	}
}

// Summarize builds per-cluster aggregates for k clusters.
// Results whose Cluster is outside [0,k) are ignored, as are chest-pain codes
// outside 0..3. Empty clusters get zero counts and no profile.
//
// Complexity: O(N·|Profile| + k).
func Summarize(results []Result, k int) Summary {
	if k < 0 {
		k = 0
	}
	s := Summary{
		ProfileFeatures: features.Names(features.Profile),
		Counts:          make([]int, k),
		Proportions:     make([]float64, k),
		AgeHistogram:    newCounts(k, len(AgeBands)),
		SexIncidence:    newCounts(k, len(SexLabels)),
		ChestPain:       newCounts(k, len(ChestPainLabels)),
	}
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, len(features.Profile))
	}

	var total int
	for _, r := range results {
		c := r.Cluster
		if c < 0 || c >= k {
			continue
		}
		total++
		s.Counts[c]++
		for j, f := range features.Profile {
			sums[c][j] += f.Get(r.Record)
		}
		s.AgeHistogram[c][ageBand(r.Age)]++
		if r.Sex == 1 {
			s.SexIncidence[c][0]++
		} else {
			s.SexIncidence[c][1]++
		}
		if cp := int(r.CP); float64(cp) == r.CP && cp >= 0 && cp < len(ChestPainLabels) {
			s.ChestPain[c][cp]++
		}
	}

	for c := 0; c < k; c++ {
		if total > 0 {
			s.Proportions[c] = float64(s.Counts[c]) / float64(total)
		}
		if s.Counts[c] == 0 {
			continue
		}
		means := sums[c]
		for j := range means {
			means[j] /= float64(s.Counts[c])
		}
		s.Profiles = append(s.Profiles, ClusterProfile{Cluster: c, Size: s.Counts[c], Means: means})
	}

	return s
}

func newCounts(rows, cols int) [][]int {
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
	}

	return out
}
