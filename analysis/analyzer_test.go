// SPDX-License-Identifier: MIT

package analysis_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/heartlens/analysis"
	"github.com/katalvlaran/heartlens/features"
	"github.com/katalvlaran/heartlens/kmeans"
	"github.com/katalvlaran/heartlens/pca"
)

func TestRunAnalysis_Empty(t *testing.T) {
	res, err := analysis.RunAnalysis(nil, 3)
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)

	res, err = analysis.RunAnalysis([]features.Record{}, 3)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestRunAnalysis_ZipsByIndex(t *testing.T) {
	records := syntheticRecords(45, 1)
	res, err := analysis.RunAnalysis(records, 3)
	require.NoError(t, err)
	require.Len(t, res, len(records))

	var spread float64
	for i, r := range res {
		assert.Equal(t, records[i], r.Record)
		assert.True(t, r.Cluster >= 0 && r.Cluster < 3, "cluster id %d", r.Cluster)
		spread += r.PCA.X*r.PCA.X + r.PCA.Y*r.PCA.Y
	}
	assert.Greater(t, spread, 0.0)
}

// TestRun_SingleCluster: k=1 puts everyone in cluster 0 with the raw column
// mean as centroid, and PCA is still populated.
func TestRun_SingleCluster(t *testing.T) {
	records := syntheticRecords(30, 2)
	opts := analysis.DefaultOptions()
	opts.NumClusters = 1
	opts.Seed = 4

	rep, err := analysis.New(opts).Run(records)
	require.NoError(t, err)

	for _, r := range rep.Results {
		assert.Equal(t, 0, r.Cluster)
	}
	require.Len(t, rep.Centroids, 1)
	for j, f := range features.ML {
		var sum float64
		for _, r := range records {
			sum += f.Get(r)
		}
		assert.InDelta(t, sum/float64(len(records)), rep.Centroids[0][j], 1e-9, f.Name)
	}
	assert.True(t, rep.Converged)
	assert.Len(t, rep.ExplainedVariance, 2)
	assert.NotZero(t, rep.Results[0].PCA.X)
	assert.Equal(t, []int{30}, rep.Summary.Counts)
}

func TestRun_ClusterOnScaled(t *testing.T) {
	records := syntheticRecords(30, 3)
	opts := analysis.DefaultOptions()
	opts.NumClusters = 1
	opts.ClusterOn = analysis.ClusterOnScaled
	opts.Seed = 1

	rep, err := analysis.New(opts).Run(records)
	require.NoError(t, err)
	assert.Equal(t, "scaled", rep.ClusterOn)
	for _, v := range rep.Centroids[0] {
		assert.InDelta(t, 0, v, 1e-9) // z-scored column means
	}
}

// TestRun_NearestCentroid checks the converged-run invariant in raw space.
func TestRun_NearestCentroid(t *testing.T) {
	records := syntheticRecords(60, 5)
	opts := analysis.DefaultOptions()
	opts.Seed = 11

	rep, err := analysis.New(opts).Run(records)
	require.NoError(t, err)
	require.True(t, rep.Converged)

	for i, r := range rep.Results {
		row := make([]float64, len(features.ML))
		for j, f := range features.ML {
			row[j] = f.Get(records[i])
		}
		own := floats.Distance(row, rep.Centroids[r.Cluster], 2)
		for _, c := range rep.Centroids {
			assert.LessOrEqual(t, own, floats.Distance(row, c, 2))
		}
	}
}

func TestRun_Reproducible(t *testing.T) {
	records := syntheticRecords(40, 6)
	opts := analysis.DefaultOptions()
	opts.Seed = 99

	a, err := analysis.New(opts).Run(records)
	require.NoError(t, err)
	b, err := analysis.New(opts).Run(records)
	require.NoError(t, err)
	assert.Equal(t, a.Results, b.Results)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRun_Errors(t *testing.T) {
	records := syntheticRecords(10, 7)

	opts := analysis.DefaultOptions()
	opts.NumClusters = 0
	_, err := analysis.New(opts).Run(records)
	assert.ErrorIs(t, err, kmeans.ErrInvalidK)

	same := make([]features.Record, 4)
	for i := range same {
		same[i] = records[0]
	}
	_, err = analysis.RunAnalysis(same, 2)
	assert.ErrorIs(t, err, pca.ErrDegenerate)

	opts = analysis.DefaultOptions()
	opts.PCA.Components = 11
	_, err = analysis.New(opts).Run(records)
	assert.ErrorIs(t, err, pca.ErrInvalidComponents)
}

func TestRun_LogsWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	opts := analysis.DefaultOptions()
	opts.Seed = 3

	rep, err := analysis.New(opts, analysis.WithLogger(logger)).Run(syntheticRecords(12, 8))
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var line map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &line))
	assert.Equal(t, rep.RunID, line["run_id"])
	assert.Equal(t, "analysis complete", line["message"])
	assert.EqualValues(t, 12, line["records"])
}

func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := analysis.NewMetrics(reg)
	require.NoError(t, err)

	opts := analysis.DefaultOptions()
	opts.Seed = 2
	a := analysis.New(opts, analysis.WithMetrics(m))

	_, err = a.Run(syntheticRecords(21, 9))
	require.NoError(t, err)
	_, err = a.Run(nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("empty")))
	assert.Equal(t, 21.0, testutil.ToFloat64(m.Records))
	assert.Equal(t, 3, testutil.CollectAndCount(m.ClusterSize))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ExplainedVariance))

	_, err = analysis.NewMetrics(reg)
	assert.Error(t, err, "second registration on the same registry must fail")
}

func TestResult_JSONFlattensRecord(t *testing.T) {
	r := analysis.Result{Record: features.Record{Age: 54, Chol: 239}, Cluster: 2, PCA: analysis.Point{X: 1.5, Y: -0.5}}
	b, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.EqualValues(t, 54, got["age"])
	assert.EqualValues(t, 239, got["chol"])
	assert.EqualValues(t, 2, got["cluster"])
	assert.Equal(t, map[string]any{"x": 1.5, "y": -0.5}, got["pca"])
}

func TestRun_Elapsed(t *testing.T) {
	rep, err := analysis.New(analysis.DefaultOptions()).Run(syntheticRecords(9, 10))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rep.Elapsed, time.Duration(0))
	assert.Len(t, rep.Features, 10)
}
