// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcome label values.
const (
	outcomeOK    = "ok"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

// Metrics holds the Prometheus collectors updated by Analyzer.Run.
type Metrics struct {
	Runs              *prometheus.CounterVec
	Records           prometheus.Counter
	Duration          prometheus.Histogram
	Iterations        prometheus.Histogram
	NonConverged      prometheus.Counter
	ExplainedVariance *prometheus.GaugeVec
	ClusterSize       *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "heartlens_analysis_runs_total",
				Help: "Analysis runs by outcome (ok, empty, error)",
			},
			[]string{"outcome"},
		),
		Records: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "heartlens_analysis_records_total",
				Help: "Records processed by successful runs",
			},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "heartlens_analysis_duration_seconds",
				Help:    "Wall time of one analysis run in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
		),
		Iterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "heartlens_kmeans_iterations",
				Help:    "Assignment passes performed per k-means run",
				Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 100},
			},
		),
		NonConverged: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "heartlens_kmeans_nonconverged_total",
				Help: "k-means runs that stopped at the iteration cap",
			},
		),
		ExplainedVariance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "heartlens_pca_explained_variance_ratio",
				Help: "Explained variance ratio of each retained component in the last run",
			},
			[]string{"component"},
		),
		ClusterSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "heartlens_cluster_size",
				Help: "Member count per cluster in the last run",
			},
			[]string{"cluster"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("analysis: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Runs, m.Records, m.Duration, m.Iterations, m.NonConverged, m.ExplainedVariance, m.ClusterSize,
	}
}

// observe records one finished run. A nil receiver is a no-op.
func (m *Metrics) observe(outcome string, elapsed time.Duration, rep *Report) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(outcome).Inc()
	m.Duration.Observe(elapsed.Seconds())
	if outcome != outcomeOK || rep == nil {
		return
	}
	m.Records.Add(float64(len(rep.Results)))
	m.Iterations.Observe(float64(rep.Iterations))
	if !rep.Converged {
		m.NonConverged.Inc()
	}
	m.ExplainedVariance.Reset()
	for i, v := range rep.ExplainedVariance {
		m.ExplainedVariance.WithLabelValues(strconv.Itoa(i)).Set(v)
	}
	m.ClusterSize.Reset()
	for c, n := range rep.Summary.Counts {
		m.ClusterSize.WithLabelValues(strconv.Itoa(c)).Set(float64(n))
	}
}
