// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		out         string
		resultsOnly bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the pipeline and print JSON",
		Long:  "Loads the CSV, runs standardize → PCA and k-means, and writes the report (or just the per-record results) as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := a.run()
			if err != nil {
				return err
			}

			var v any = rep
			if resultsOnly {
				v = rep.Results
			}
			if out == "" || out == "-" {
				return encodeJSON(cmd.OutOrStdout(), v)
			}

			return writeJSONFile(out, v)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&resultsOnly, "results-only", false, "Print only the per-record results array")

	return cmd
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// writeJSONFile writes v to path, reporting a failed close as an error.
func writeJSONFile(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("analyze: %w", cerr)
		}
	}()

	return encodeJSON(f, v)
}
