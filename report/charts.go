// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/heartlens/analysis"
)

func clusterName(c int) string { return fmt.Sprintf("Cluster %d", c) }

// clusterStyle colors cluster c from the palette, cycling when k exceeds it.
// Series carry their own color because go-echarts emits the global color
// list only for the white theme.
func clusterStyle(s Settings, c int) *opts.ItemStyle {
	if len(s.Palette) == 0 {
		return nil
	}

	return &opts.ItemStyle{Color: s.Palette[c%len(s.Palette)]}
}

// seriesStyle wraps clusterStyle as a series option.
func seriesStyle(s Settings, c int) charts.SeriesOpts {
	return func(series *charts.SingleSeries) { series.ItemStyle = clusterStyle(s, c) }
}

// baseOpts are shared by every chart on the page.
func baseOpts(s Settings, title, subtitle string) []charts.GlobalOpts {
	ini := opts.Initialization{Theme: s.Theme, Width: "900px", Height: "480px"}
	if s.AssetsHost != "" {
		ini.AssetsHost = s.AssetsHost
	}

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(ini),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
	}
}

// pcaScatter plots every record at its PCA coordinate, one series per cluster.
func pcaScatter(s Settings, rep *analysis.Report) *charts.Scatter {
	sub := ""
	if len(rep.ExplainedVariance) >= 2 {
		sub = fmt.Sprintf("PC1 %.1f%%, PC2 %.1f%% of variance",
			100*rep.ExplainedVariance[0], 100*rep.ExplainedVariance[1])
	}
	sc := charts.NewScatter()
	sc.SetGlobalOptions(append(baseOpts(s, "Clusters in PCA space", sub),
		charts.WithXAxisOpts(opts.XAxis{Name: "PC1"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "PC2"}),
	)...)

	series := make([][]opts.ScatterData, rep.NumClusters)
	for _, r := range rep.Results {
		if r.Cluster < 0 || r.Cluster >= len(series) {
			continue
		}
		series[r.Cluster] = append(series[r.Cluster], opts.ScatterData{
			Name:  fmt.Sprintf("age %g, sex %s, chol %g", r.Age, sexLabel(r.Sex), r.Chol),
			Value: []interface{}{r.PCA.X, r.PCA.Y},
		})
	}
	for c, pts := range series {
		sc.AddSeries(clusterName(c), pts, seriesStyle(s, c))
	}

	return sc
}

func sexLabel(v float64) string {
	if v == 1 {
		return analysis.SexLabels[0]
	}

	return analysis.SexLabels[1]
}

// profileRadar draws the per-cluster means of the profile features.
func profileRadar(s Settings, rep *analysis.Report) *charts.Radar {
	sum := rep.Summary
	indicators := make([]*opts.Indicator, len(sum.ProfileFeatures))
	for j, name := range sum.ProfileFeatures {
		var hi float64
		for _, p := range sum.Profiles {
			hi = math.Max(hi, p.Means[j])
		}
		indicators[j] = &opts.Indicator{Name: name, Max: float32(math.Ceil(hi * 1.2))}
	}

	rd := charts.NewRadar()
	rd.SetGlobalOptions(append(baseOpts(s, "Cluster profiles", "mean per cluster"),
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators, Shape: "polygon"}),
	)...)
	for _, p := range sum.Profiles {
		rd.AddSeries(clusterName(p.Cluster),
			[]opts.RadarData{{Name: clusterName(p.Cluster), Value: p.Means}},
			seriesStyle(s, p.Cluster))
	}

	return rd
}

// proportionPie shows the share of records per cluster.
func proportionPie(s Settings, rep *analysis.Report) *charts.Pie {
	data := make([]opts.PieData, len(rep.Summary.Counts))
	for c, n := range rep.Summary.Counts {
		data[c] = opts.PieData{Name: clusterName(c), Value: n, ItemStyle: clusterStyle(s, c)}
	}
	pie := charts.NewPie()
	pie.SetGlobalOptions(baseOpts(s, "Cluster proportions", fmt.Sprintf("%d records", len(rep.Results)))...)
	pie.AddSeries("records", data)

	return pie
}

// stackedBar renders a [cluster][category] count table as stacked bars.
func stackedBar(s Settings, title, axis string, labels []string, counts [][]int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOpts(s, title, ""),
		charts.WithXAxisOpts(opts.XAxis{Name: axis}),
		charts.WithYAxisOpts(opts.YAxis{Name: "patients"}),
	)...)
	bar.SetXAxis(labels)
	for c, row := range counts {
		data := make([]opts.BarData, len(row))
		for i, n := range row {
			data[i] = opts.BarData{Value: n}
		}
		bar.AddSeries(clusterName(c), data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "total"}),
			seriesStyle(s, c))
	}

	return bar
}
