// Package charts builds an interactive HTML dashboard for a scored
// solution: a bar chart of the score components and a pie chart of the
// rack mix.
package charts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/plan"
)

// WriteDashboard renders the solution dashboard page to w.
func WriteDashboard(w io.Writer, sol plan.Solution, title string) error {
	page := components.NewPage()
	page.SetPageTitle(title)
	page.AddCharts(scoreBar(sol, title), rackPie(sol))
	return page.Render(w)
}

func scoreBar(sol plan.Solution, title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "score components (0-1 scale)",
		}),
		charts.WithYAxisOpts(opts.YAxis{Max: 1}),
	)

	names := []string{"efficiency", "accessibility", "workflow", "density", "aisle"}
	values := []opts.BarData{
		{Value: sol.LayoutEfficiency},
		{Value: sol.Accessibility},
		{Value: sol.Workflow},
		{Value: sol.Metrics.Density},
		{Value: sol.Metrics.AisleEfficiency},
	}
	bar.SetXAxis(names).AddSeries("components", values)
	return bar
}

func rackPie(sol plan.Solution) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Rack mix"}),
	)

	byKind := sol.ByKind()
	data := make([]opts.PieData, 0, len(byKind))
	for _, k := range catalog.Kinds() {
		if n := len(byKind[k]); n > 0 {
			data = append(data, opts.PieData{Name: k.String(), Value: n})
		}
	}
	pie.AddSeries("racks", data)
	return pie
}
