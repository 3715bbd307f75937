// SPDX-License-Identifier: MIT

// Command heartlens clusters and projects heart-disease records.
//
// Usage:
//
//	heartlens analyze --data heart.csv [--clusters 3] [--out result.json]
//	heartlens report  --data heart.csv [--out heartlens.html]
//	heartlens version
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heartlens/analysis"
	"github.com/katalvlaran/heartlens/config"
	"github.com/katalvlaran/heartlens/dataset"
	"github.com/katalvlaran/heartlens/features"
)

const (
	appName = "heartlens"
	version = "v0.3.0"
)

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	registry *prometheus.Registry
	metrics  *analysis.Metrics

	// flags
	configPath  string
	logLevel    string
	metricsFile string
	dataPath    string
	clusters    int
	seed        int64
	centering   string
	clusterOn   string
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Unsupervised analysis of heart-disease records",
		Long:          "heartlens standardizes clinical features, projects them to 2-D with PCA and groups patients with k-means.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, logOut)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level (trace|debug|info|warn|error)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "Write Prometheus text metrics here on exit")
	pf.StringVar(&a.dataPath, "data", "", "Input CSV (overrides data.path)")
	pf.IntVar(&a.clusters, "clusters", 0, "Number of clusters (overrides analysis.num_clusters)")
	pf.Int64Var(&a.seed, "seed", 0, "k-means seed, 0 = clock (overrides analysis.seed)")
	pf.StringVar(&a.centering, "centering", "", "PCA centering: rows|columns")
	pf.StringVar(&a.clusterOn, "cluster-on", "", "k-means input: raw|scaled")

	root.AddCommand(newAnalyzeCmd(a), newReportCmd(a), newVersionCmd())

	return root
}

// setup loads configuration, applies flag overrides and builds the logger and metrics.
func (a *app) setup(cmd *cobra.Command, logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Path = a.dataPath
	}
	if flags.Changed("clusters") {
		cfg.Analysis.NumClusters = a.clusters
	}
	if flags.Changed("seed") {
		cfg.Analysis.Seed = a.seed
	}
	if flags.Changed("centering") {
		cfg.Analysis.Centering = a.centering
	}
	if flags.Changed("cluster-on") {
		cfg.Analysis.ClusterOn = a.clusterOn
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level, logOut)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger

	a.registry = prometheus.NewRegistry()
	if a.metrics, err = analysis.NewMetrics(a.registry); err != nil {
		return err
	}

	return nil
}

// newLogger returns a console logger at level writing to w.
func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("app", appName).Logger(), nil
}

// run loads the dataset and executes one analysis with the resolved config.
// The metrics file is written on every exit path, failed runs included.
func (a *app) run() (*analysis.Report, error) {
	defer a.flushMetrics()

	if a.cfg.Data.Path == "" {
		return nil, fmt.Errorf("no input: set --data or data.path")
	}
	records, st, err := dataset.LoadFile(a.cfg.Data.Path)
	if err != nil {
		return nil, err
	}
	a.log.Info().
		Str("path", a.cfg.Data.Path).
		Int("rows", st.Rows).
		Int("kept", len(records)).
		Int("missing_target", st.MissingTarget).
		Int("duplicates", st.Duplicates).
		Msg("dataset loaded")

	opts, err := a.cfg.AnalysisOptions()
	if err != nil {
		return nil, err
	}

	return analysis.New(opts, analysis.WithLogger(a.log), analysis.WithMetrics(a.metrics)).Run(records)
}

// flushMetrics dumps the registry to --metrics-file; failures are logged only.
func (a *app) flushMetrics() {
	if err := writeMetrics(a.metricsFile, a.registry); err != nil {
		a.log.Warn().Err(err).Str("path", a.metricsFile).Msg("metrics not written")
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version and feature set",
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (features: %v)\n", appName, version, features.Names(features.ML))
			return err
		},
	}
}
