package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/toukei-tech/toukei/pkg/stats"
)

// DefaultChartTopN is how many languages get their own pie slice before
// the remainder collapses into "Other".
const DefaultChartTopN = 10

const (
	chartTitle  = "Code Distribution by Language"
	chartWidth  = "900px"
	chartHeight = "600px"
)

// NewPieChart builds a pie chart of total lines per language. Languages
// beyond topN are folded into a single "Other" slice.
func NewPieChart(report *stats.Report, topN int) *charts.Pie {
	if topN <= 0 {
		topN = DefaultChartTopN
	}

	sorted := report.Sorted(stats.ByLinesDesc)

	var data []opts.PieData

	other := 0

	for i, ls := range sorted {
		if i < topN {
			data = append(data, opts.PieData{Name: ls.Language, Value: ls.Lines})

			continue
		}

		other += ls.Lines
	}

	if other > 0 {
		data = append(data, opts.PieData{Name: "Other", Value: other})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: chartTitle}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	pie.AddSeries("Lines", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c} ({d}%)",
		}),
	)

	return pie
}

// SaveChart renders the pie chart as a standalone HTML file.
func SaveChart(report *stats.Report, path string, topN int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	if err := NewPieChart(report, topN).Render(file); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}

	return nil
}
