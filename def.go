package chart

import (
	"github.com/tinywasm/fmt"

	"github.com/tinywasm/chart/errs"
)

// ChartType selects the normalizer, geometry and renderer used for a model.
type ChartType int

const (
	BarHorizontal ChartType = iota
	BarVertical
	PieChart
	LineChart
)

func (t ChartType) String() string {
	switch t {
	case BarHorizontal:
		return "hbar"
	case BarVertical:
		return "vbar"
	case PieChart:
		return "pie"
	case LineChart:
		return "line"
	}
	return "unknown"
}

// ParseChartType accepts the names returned by String plus a few aliases
// ("bar", "horizontal", "vertical"). Case and surrounding spaces are ignored.
func ParseChartType(name string) (ChartType, error) {
	switch fmt.Convert(name).TrimSpace().ToLower().String() {
	case "hbar", "horizontal", "bar-horizontal":
		return BarHorizontal, nil
	case "vbar", "bar", "vertical", "bar-vertical":
		return BarVertical, nil
	case "pie":
		return PieChart, nil
	case "line":
		return LineChart, nil
	}
	return 0, errs.ErrUnknownChartType
}

const (
	// DefaultColour is the single-series colour of a new model.
	DefaultColour = "steelblue"

	// BarSlot is the horizontal space taken by one vertical bar, margins included.
	BarSlot = 60

	// LabelRotation is the rotation, in degrees, of vertical bar labels.
	LabelRotation = -45

	// PieUnits is the length of a full circle in the arc convention.
	PieUnits = 100
)
