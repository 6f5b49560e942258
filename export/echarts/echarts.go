// Package echarts exports chart models as interactive ECharts pages.
package echarts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/style"
)

// Width and height of the exported canvas.
var (
	Width  = "900px"
	Height = "500px"
)

// Convert builds the ECharts equivalent of m. Raw values are exported; the
// ECharts runtime scales them itself. Bars and lines are drawn in the chart
// region background-color, pies cycle through the model colours.
func Convert(m chart.Model) (render.Renderer, error) {
	items := m.Items()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: pageTitle(m),
			ChartID:   "chart_" + m.Type().String(),
			Width:     Width,
			Height:    Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: m.Title()}),
	}

	switch m.Type() {
	case chart.BarHorizontal, chart.BarVertical:
		data := make([]opts.BarData, len(items))
		for i, it := range items {
			data[i] = opts.BarData{Name: it.Label, Value: it.Value}
		}
		bar := charts.NewBar()
		bar.SetGlobalOptions(append(global, charts.WithColorsOpts(opts.Colors{seriesColour(m)}))...)
		bar.SetXAxis(labels).AddSeries(m.Title(), data)
		if m.Type() == chart.BarHorizontal {
			bar.XYReversal()
		}
		return bar, nil

	case chart.PieChart:
		data := make([]opts.PieData, len(items))
		for i, it := range items {
			data[i] = opts.PieData{Name: it.Label, Value: it.Value}
		}
		pie := charts.NewPie()
		pie.SetGlobalOptions(append(global, charts.WithColorsOpts(opts.Colors(m.Colours())))...)
		pie.AddSeries(m.Title(), data)
		return pie, nil

	case chart.LineChart:
		data := make([]opts.LineData, len(items))
		for i, it := range items {
			data[i] = opts.LineData{Name: it.Label, Value: it.Value}
		}
		line := charts.NewLine()
		line.SetGlobalOptions(append(global, charts.WithColorsOpts(opts.Colors{seriesColour(m)}))...)
		line.SetXAxis(labels).AddSeries(m.Title(), data)
		return line, nil
	}
	return nil, errs.ErrUnknownChartType
}

// Write renders the ECharts page of m into w.
func Write(w io.Writer, m chart.Model) error {
	r, err := Convert(m)
	if err != nil {
		return err
	}
	return r.Render(w)
}

func seriesColour(m chart.Model) string {
	if c, ok := m.Styles().Value(style.Chart, "background-color"); ok {
		return c
	}
	if cs := m.Colours(); len(cs) > 0 {
		return cs[0]
	}
	return chart.DefaultColour
}

func pageTitle(m chart.Model) string {
	if m.Title() != "" {
		return m.Title()
	}
	return m.Type().String() + " chart"
}
