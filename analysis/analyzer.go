// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/heartlens/features"
	"github.com/katalvlaran/heartlens/kmeans"
	"github.com/katalvlaran/heartlens/matrix"
	"github.com/katalvlaran/heartlens/pca"
	"github.com/katalvlaran/heartlens/preprocess"
)

// Analyzer runs the pipeline with fixed options.
type Analyzer struct {
	opts    Options
	log     zerolog.Logger
	metrics *Metrics
	now     func() time.Time
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the run logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// New returns an Analyzer for opts.
func New(opts Options, with ...Option) *Analyzer {
	a := &Analyzer{
		opts: opts,
		log:  zerolog.Nop(),
		now:  time.Now,
	}
	for _, o := range with {
		o(a)
	}

	return a
}

// Options returns a copy of the analyzer's options.
func (a *Analyzer) Options() Options { return a.opts }

// RunAnalysis clusters and projects records with default options and k=numClusters.
// An empty input yields an empty, non-nil slice and no error.
func RunAnalysis(records []features.Record, numClusters int) ([]Result, error) {
	opts := DefaultOptions()
	opts.NumClusters = numClusters
	rep, err := New(opts).Run(records)
	if err != nil {
		return nil, err
	}

	return rep.Results, nil
}

// Run executes the pipeline on records.
//
// Implementation:
//   - Stage 1: empty input → empty Report (no error).
//   - Stage 2: raw = Extract(records, features.ML); scaled = Standardize(raw).
//   - Stage 3: PCA on scaled; k-means on raw (or scaled, per ClusterOn).
//   - Stage 4: zip results by index, summarize, log and record metrics.
//
// Errors from every stage are wrapped with the stage name and keep their
// sentinels (pca.ErrDegenerate, kmeans.ErrInvalidK, ...).
func (a *Analyzer) Run(records []features.Record) (*Report, error) {
	start := a.now()
	rep := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: start.UTC(),
		NumClusters: a.opts.NumClusters,
		Features:    features.Names(features.ML),
		Centering:   a.opts.PCA.Centering.String(),
		ClusterOn:   a.opts.ClusterOn.String(),
		Results:     []Result{},
	}
	logger := a.log.With().Str("run_id", rep.RunID).Logger()

	// Stage 1: empty input.
	if len(records) == 0 {
		rep.Summary = Summarize(nil, a.opts.NumClusters)
		rep.Elapsed = a.now().Sub(start)
		logger.Debug().Msg("no records, nothing to analyze")
		a.metrics.observe(outcomeEmpty, rep.Elapsed, rep)
		return rep, nil
	}

	fail := func(stage string, err error) (*Report, error) {
		elapsed := a.now().Sub(start)
		logger.Error().Err(err).Str("stage", stage).Int("records", len(records)).Msg("analysis failed")
		a.metrics.observe(outcomeError, elapsed, nil)
		return nil, fmt.Errorf("analysis: %s: %w", stage, err)
	}

	// Stage 2: feature matrix and its standardized copy.
	raw, err := features.Extract(records, features.ML)
	if err != nil {
		return fail("extract", err)
	}
	scaled, err := preprocess.Standardize(raw)
	if err != nil {
		return fail("standardize", err)
	}
	if zv := scaled.ZeroVariance(); len(zv) > 0 {
		logger.Debug().Ints("columns", zv).Msg("zero-variance features zeroed")
	}

	// Stage 3: the two independent branches.
	proj, err := pca.Reduce(scaled.Matrix, a.opts.PCA)
	if err != nil {
		return fail("pca", err)
	}
	var clusterInput matrix.Matrix = raw
	if a.opts.ClusterOn == ClusterOnScaled {
		clusterInput = scaled.Matrix
	}
	km, err := kmeans.Cluster(clusterInput, a.opts.NumClusters, kmeans.Options{
		MaxIterations: a.opts.MaxIterations,
		Seed:          a.opts.Seed,
		Source:        a.opts.Source,
	})
	if err != nil {
		return fail("kmeans", err)
	}

	// Stage 4: zip by index.
	rep.Results = make([]Result, len(records))
	coords := proj.Coordinates
	for i, r := range records {
		var p Point
		p.X, _ = coords.At(i, 0)
		if coords.Cols() > 1 {
			p.Y, _ = coords.At(i, 1)
		}
		rep.Results[i] = Result{Record: r, Cluster: km.Assignments[i], PCA: p}
	}
	rep.ExplainedVariance = proj.ExplainedVariance()
	rep.Iterations = km.Iterations
	rep.Converged = km.Converged
	rep.Inertia = km.Inertia
	rep.Centroids = km.Centroids
	rep.Summary = Summarize(rep.Results, a.opts.NumClusters)
	rep.Elapsed = a.now().Sub(start)

	ev := logger.Info()
	if !km.Converged {
		ev = logger.Warn()
	}
	ev.Int("records", len(records)).
		Int("clusters", a.opts.NumClusters).
		Int("iterations", km.Iterations).
		Bool("converged", km.Converged).
		Ints("sizes", rep.Summary.Counts).
		Floats64("explained_variance", rep.ExplainedVariance).
		Dur("elapsed", rep.Elapsed).
		Msg("analysis complete")
	a.metrics.observe(outcomeOK, rep.Elapsed, rep)

	return rep, nil
}
