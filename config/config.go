// SPDX-License-Identifier: MIT

// Package config loads heartlens settings from YAML with environment overrides.
//
// Precedence (lowest first): Default() → YAML file → HEARTLENS_* environment
// variables → command-line flags (applied by the CLI).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heartlens/analysis"
	"github.com/katalvlaran/heartlens/features"
	"github.com/katalvlaran/heartlens/matrix"
	"github.com/katalvlaran/heartlens/pca"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Data     DataSection     `yaml:"data"`
	Analysis AnalysisSection `yaml:"analysis"`
	Eigen    EigenSection    `yaml:"eigen"`
	Report   ReportSection   `yaml:"report"`
	Log      LogSection      `yaml:"log"`
}

// DataSection locates the input CSV.
type DataSection struct {
	Path string `yaml:"path"`
}

// AnalysisSection mirrors analysis.Options.
type AnalysisSection struct {
	NumClusters   int    `yaml:"num_clusters"`
	MaxIterations int    `yaml:"max_iterations"`
	Components    int    `yaml:"components"`
	Centering     string `yaml:"centering"`  // rows | columns
	ClusterOn     string `yaml:"cluster_on"` // raw | scaled
	Seed          int64  `yaml:"seed"`       // 0 = clock-seeded
}

// EigenSection tunes the Jacobi solver.
type EigenSection struct {
	Tolerance    float64 `yaml:"tolerance"`
	MaxRotations int     `yaml:"max_rotations"`
}

// ReportSection configures the HTML report.
type ReportSection struct {
	Title      string `yaml:"title"`
	Theme      string `yaml:"theme"`
	AssetsHost string `yaml:"assets_host"`
	Output     string `yaml:"output"`
}

// LogSection configures the CLI logger.
type LogSection struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analysis: AnalysisSection{
			NumClusters:   analysis.DefaultNumClusters,
			MaxIterations: 100,
			Components:    2,
			Centering:     pca.CenterRows.String(),
			ClusterOn:     analysis.ClusterOnRaw.String(),
		},
		Eigen: EigenSection{
			Tolerance:    matrix.DefaultEigenTol,
			MaxRotations: matrix.DefaultEigenMaxIter,
		},
		Report: ReportSection{
			Title:  "Heart disease clusters",
			Theme:  "westeros",
			Output: "heartlens.html",
		},
		Log: LogSection{Level: "info"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and environment overrides, then validates it.
// Unknown YAML keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides reads HEARTLENS_DATA, HEARTLENS_CLUSTERS, HEARTLENS_SEED
// and HEARTLENS_LOG_LEVEL. A malformed number is an error, not a silent skip.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("HEARTLENS_DATA"); v != "" {
		cfg.Data.Path = v
	}
	if v := os.Getenv("HEARTLENS_CLUSTERS"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HEARTLENS_CLUSTERS=%q", ErrInvalidConfig, v)
		}
		cfg.Analysis.NumClusters = k
	}
	if v := os.Getenv("HEARTLENS_SEED"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: HEARTLENS_SEED=%q", ErrInvalidConfig, v)
		}
		cfg.Analysis.Seed = s
	}
	if v := os.Getenv("HEARTLENS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	a := c.Analysis
	switch {
	case a.NumClusters < 1:
		return fmt.Errorf("%w: num_clusters must be positive", ErrInvalidConfig)
	case a.MaxIterations < 1:
		return fmt.Errorf("%w: max_iterations must be positive", ErrInvalidConfig)
	case a.Components < 1 || a.Components > len(features.ML):
		return fmt.Errorf("%w: components must be in [1,%d]", ErrInvalidConfig, len(features.ML))
	case c.Eigen.Tolerance <= 0:
		return fmt.Errorf("%w: eigen.tolerance must be positive", ErrInvalidConfig)
	case c.Eigen.MaxRotations < 1:
		return fmt.Errorf("%w: eigen.max_rotations must be positive", ErrInvalidConfig)
	}
	if _, err := parseCentering(a.Centering); err != nil {
		return err
	}
	if _, err := parseClusterOn(a.ClusterOn); err != nil {
		return err
	}

	return nil
}

// AnalysisOptions converts the analysis and eigen sections.
func (c *Config) AnalysisOptions() (analysis.Options, error) {
	if err := c.Validate(); err != nil {
		return analysis.Options{}, err
	}
	centering, _ := parseCentering(c.Analysis.Centering)
	on, _ := parseClusterOn(c.Analysis.ClusterOn)

	opts := analysis.DefaultOptions()
	opts.NumClusters = c.Analysis.NumClusters
	opts.MaxIterations = c.Analysis.MaxIterations
	opts.Seed = c.Analysis.Seed
	opts.ClusterOn = on
	opts.PCA.Components = c.Analysis.Components
	opts.PCA.Centering = centering
	opts.PCA.EigenTol = c.Eigen.Tolerance
	opts.PCA.EigenMaxIter = c.Eigen.MaxRotations

	return opts, nil
}

func parseCentering(s string) (pca.Centering, error) {
	switch s {
	case "rows", "":
		return pca.CenterRows, nil
	case "columns":
		return pca.CenterColumns, nil
	}

	return 0, fmt.Errorf("%w: centering %q (want rows|columns)", ErrInvalidConfig, s)
}

func parseClusterOn(s string) (analysis.ClusterSpace, error) {
	switch s {
	case "raw", "":
		return analysis.ClusterOnRaw, nil
	case "scaled":
		return analysis.ClusterOnScaled, nil
	}

	return 0, fmt.Errorf("%w: cluster_on %q (want raw|scaled)", ErrInvalidConfig, s)
}
