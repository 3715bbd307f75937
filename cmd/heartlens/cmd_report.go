// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heartlens/report"
)

func newReportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the analysis as an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report.Init(report.Settings{
				Theme:      a.cfg.Report.Theme,
				AssetsHost: a.cfg.Report.AssetsHost,
			})

			rep, err := a.run()
			if err != nil {
				return err
			}
			path := a.cfg.Report.Output
			if out != "" {
				path = out
			}
			if err := report.WriteFile(path, rep, a.cfg.Report.Title); err != nil {
				return err
			}
			a.log.Info().Str("path", path).Str("run_id", rep.RunID).Msg("report written")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)

			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "HTML output path (overrides report.output)")

	return cmd
}
