// SPDX-License-Identifier: MIT

package analysis_test

import (
	"math/rand"

	"github.com/katalvlaran/heartlens/features"
)

// syntheticRecords draws n plausible records from three loose groups.
func syntheticRecords(n int, seed int64) []features.Record {
	rng := rand.New(rand.NewSource(seed))
	out := make([]features.Record, n)
	for i := range out {
		g := float64(i % 3)
		out[i] = features.Record{
			Age:      35 + 12*g + 5*rng.Float64(),
			Sex:      float64(rng.Intn(2)),
			CP:       float64(rng.Intn(4)),
			Trestbps: 115 + 10*g + 8*rng.Float64(),
			Chol:     190 + 60*g + 20*rng.Float64(),
			FBS:      float64(rng.Intn(2)),
			Restecg:  float64(rng.Intn(3)),
			Thalach:  185 - 20*g + 6*rng.Float64(),
			Exang:    float64(rng.Intn(2)),
			Oldpeak:  g + rng.Float64(),
			Slope:    float64(rng.Intn(3)),
			CA:       float64(rng.Intn(4)),
			Thal:     float64(1 + rng.Intn(3)),
			Target:   float64(rng.Intn(2)),
		}
	}

	return out
}
