package chart

import (
	"github.com/tinywasm/chart/style"
)

type styleRow struct {
	region string
	props  []style.Property
}

var prop = style.P

// baseStyles seeds every region so later overrides have something to act on.
var baseStyles = []styleRow{
	{style.Container, []style.Property{prop("display", "flex"), prop("flex-direction", "column"), prop("font-family", "sans-serif")}},
	{style.Title, []style.Property{prop("font-size", "1.2em"), prop("font-weight", "bold"), prop("margin-bottom", "10px")}},
	{style.ChartContainer, []style.Property{prop("display", "flex")}},
	{style.Chart, nil},
	{style.ChartElements, nil},
	{style.Legend, nil},
	{style.LegendLabels, nil},
}

var hBarStyles = []styleRow{
	{style.ChartContainer, []style.Property{prop("flex-direction", "column")}},
	{style.ChartElements, []style.Property{prop("display", "flex"), prop("flex-direction", "column"), prop("width", "100%")}},
	{style.Chart, []style.Property{prop("background-color", DefaultColour), prop("padding", "3px"), prop("margin", "1px"), prop("color", "white")}},
	{style.LegendLabels, []style.Property{prop("display", "block"), prop("text-align", "right"), prop("font-size", "10px")}},
}

var vBarStyles = []styleRow{
	{style.ChartContainer, []style.Property{prop("flex-direction", "column")}},
	{style.ChartElements, []style.Property{prop("display", "flex"), prop("flex-direction", "row"), prop("height", "300px"), prop("align-items", "flex-end")}},
	{style.Chart, []style.Property{prop("background-color", DefaultColour), prop("width", "50px"), prop("margin", "0 5px")}},
	{style.Legend, []style.Property{prop("display", "flex"), prop("flex-direction", "row"), prop("height", "60px")}},
	{style.LegendLabels, []style.Property{prop("width", "60px"), prop("font-size", "10px"), prop("text-align", "right")}},
}

var pieStyles = []styleRow{
	{style.ChartContainer, []style.Property{prop("flex-direction", "row"), prop("align-items", "center")}},
	{style.Chart, []style.Property{prop("width", "200px"), prop("height", "200px"), prop("background-color", "grey"), prop("border-radius", "50%"), prop("transform", "rotate(-90deg)")}},
	{style.ChartElements, []style.Property{prop("stroke-width", "32"), prop("fill-opacity", "0")}},
	{style.Legend, []style.Property{prop("display", "flex"), prop("flex-direction", "column"), prop("margin-left", "20px")}},
	{style.LegendLabels, []style.Property{prop("font-size", "12px"), prop("margin", "2px")}},
}

var lineStyles = []styleRow{
	{style.ChartContainer, []style.Property{prop("width", "400px"), prop("height", "300px")}},
	{style.Chart, []style.Property{prop("background-color", DefaultColour)}},
	{style.ChartElements, []style.Property{prop("stroke-width", "2"), prop("fill", "none")}},
	{style.LegendLabels, []style.Property{prop("font-size", "10px")}},
}

func stylesFor(t ChartType) []styleRow {
	switch t {
	case BarHorizontal:
		return hBarStyles
	case BarVertical:
		return vBarStyles
	case PieChart:
		return pieStyles
	case LineChart:
		return lineStyles
	}
	return nil
}

// DefaultStyles returns the cascade a constructor seeds for t.
func DefaultStyles(t ChartType) style.Cascade {
	m := Model{}.seed(baseStyles).seed(stylesFor(t))
	return m.styles
}
