// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// writeMetrics dumps every family gathered from g in the Prometheus text
// format. An empty path is a no-op.
func writeMetrics(path string, g prometheus.Gatherer) (err error) {
	if path == "" {
		return nil
	}
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("metrics file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}

	return w.Flush()
}
