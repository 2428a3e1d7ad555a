package report

import (
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pingcap/errors"

	"montyhall/internal/montyhall"
)

// RenderCharts draws the win percentage of each strategy as a bar chart and,
// if any result carries a trace, the running ratio as a line chart.
func RenderCharts(w io.Writer, results []montyhall.Result) error {
	if len(results) == 0 {
		return errors.New("no results to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Win percentage by strategy"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	names := make([]string, 0, len(results))
	items := make([]opts.BarData, 0, len(results))
	for _, r := range results {
		names = append(names, r.Strategy.String())
		items = append(items, opts.BarData{Value: r.Percent()})
	}
	bar.SetXAxis(names).AddSeries("win %", items)

	page := components.NewPage()
	page.PageTitle = "Monty Hall simulation"
	page.AddCharts(bar)

	if line := traceChart(results); line != nil {
		page.AddCharts(line)
	}
	return errors.Trace(page.Render(w))
}

func traceChart(results []montyhall.Result) *charts.Line {
	var longest []montyhall.Point
	for _, r := range results {
		if len(r.Trace) > len(longest) {
			longest = r.Trace
		}
	}
	if len(longest) == 0 {
		return nil
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Running win ratio"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	steps := make([]string, 0, len(longest))
	for _, p := range longest {
		steps = append(steps, strconv.Itoa(p.Trials))
	}
	line.SetXAxis(steps)
	for _, r := range results {
		if len(r.Trace) == 0 {
			continue
		}
		data := make([]opts.LineData, 0, len(r.Trace))
		for _, p := range r.Trace {
			data = append(data, opts.LineData{Value: p.Ratio})
		}
		line.AddSeries(r.Strategy.String(), data)
	}
	return line
}

func WriteChart(path string, results []montyhall.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotatef(err, "create chart %s failed", path)
	}
	if err := RenderCharts(f, results); err != nil {
		f.Close()
		return err
	}
	return errors.Trace(f.Close())
}
