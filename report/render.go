// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/katalvlaran/heartlens/analysis"
)

// ErrNilReport is returned when rendering a nil report.
var ErrNilReport = errors.New("report: nil analysis report")

// Page assembles all charts for rep into one go-echarts page.
func Page(rep *analysis.Report, title string) (*components.Page, error) {
	s, err := settings()
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, ErrNilReport
	}

	page := components.NewPage()
	page.PageTitle = title
	if s.AssetsHost != "" {
		page.AssetsHost = s.AssetsHost
	}
	page.AddCharts(
		pcaScatter(s, rep),
		profileRadar(s, rep),
		proportionPie(s, rep),
		stackedBar(s, "Age bands", "age", analysis.AgeBands, rep.Summary.AgeHistogram),
		stackedBar(s, "Sex", "sex", analysis.SexLabels, rep.Summary.SexIncidence),
		stackedBar(s, "Chest pain type", "cp", analysis.ChestPainLabels, rep.Summary.ChestPain),
	)

	return page, nil
}

// Render writes the HTML page for rep to w.
func Render(w io.Writer, rep *analysis.Report, title string) error {
	page, err := Page(rep, title)
	if err != nil {
		return err
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}

	return nil
}

// WriteFile renders rep into the file at path, replacing it.
func WriteFile(path string, rep *analysis.Report, title string) (err error) {
	if _, err = settings(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: %w", cerr)
		}
	}()

	return Render(f, rep, title)
}
