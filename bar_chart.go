package chart

import (
	"strconv"

	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/style"
	"github.com/tinywasm/chart/utils"
)

// Bar is the geometry of one bar: its label and its length in percent of
// the chart area (width for horizontal bars, height for vertical ones).
type Bar struct {
	Label   string
	Percent float64
}

// LabelPlacement positions a vertical bar label: rotated by Rotate degrees
// and shifted by Offset pixels along the label row.
type LabelPlacement struct {
	Label  string
	Offset int
	Rotate int
}

// HorizontalBars returns one bar per item, width = NormValue percent.
func HorizontalBars(items []DataItem) []Bar {
	bars := make([]Bar, len(items))
	for i, it := range items {
		bars[i] = Bar{Label: it.Label, Percent: it.NormValue}
	}
	return bars
}

// VerticalBars returns one bar per item, height = NormValue percent, plus the
// placement of each label in the row beneath the bars.
func VerticalBars(items []DataItem) ([]Bar, []LabelPlacement) {
	n := len(items)
	bars := make([]Bar, n)
	labels := make([]LabelPlacement, n)
	for i, it := range items {
		bars[i] = Bar{Label: it.Label, Percent: it.NormValue}
		labels[i] = LabelPlacement{Label: it.Label, Offset: LabelOffset(i, n), Rotate: LabelRotation}
	}
	return bars, labels
}

// LabelOffset is the horizontal shift of label i out of n that centres it,
// once rotated, under its bar. Bars are BarSlot pixels apart.
//
//	n even: (n/2 - i - 1) * BarSlot + 20
//	n odd:  (n/2 - i) * BarSlot - 10
func LabelOffset(i, n int) int {
	half := n / 2
	if n%2 == 0 {
		return (half-i-1)*BarSlot + 20
	}
	return (half-i)*BarSlot - 10
}

func labelTransform(l LabelPlacement) string {
	return "translateX(" + utils.Pixels(l.Offset) + ") rotate(" + strconv.Itoa(l.Rotate) + "deg)"
}

type hBarLayout struct{}

func (hBarLayout) normalizer() Normalizer { return MaxRelative{} }

// render: chart-elements holds one chart bar per item, the label inside it.
func (hBarLayout) render(m Model, _ renderer) ([]*element.Node, error) {
	bars := element.New("div", style.ChartElements, m.styles.Lookup(style.ChartElements))
	for _, b := range HorizontalBars(m.items) {
		label := element.New("span", style.LegendLabels, m.styles.Lookup(style.LegendLabels)).
			SetText(b.Label)
		bar := element.New("div", style.Chart, m.styles.Lookup(style.Chart)).
			SetLayout("width", utils.Percent(b.Percent)).
			Append(label)
		bars.Append(bar)
	}
	return []*element.Node{bars}, nil
}

type vBarLayout struct{}

func (vBarLayout) normalizer() Normalizer { return MaxRelative{} }

// render: a row of chart bars followed by a legend row of rotated labels.
func (vBarLayout) render(m Model, _ renderer) ([]*element.Node, error) {
	bars, labels := VerticalBars(m.items)

	row := element.New("div", style.ChartElements, m.styles.Lookup(style.ChartElements))
	for _, b := range bars {
		row.Append(element.New("div", style.Chart, m.styles.Lookup(style.Chart)).
			SetLayout("height", utils.Percent(b.Percent)))
	}

	legend := element.New("div", style.Legend, m.styles.Lookup(style.Legend))
	for _, l := range labels {
		legend.Append(element.New("div", style.LegendLabels, m.styles.Lookup(style.LegendLabels)).
			SetLayout("transform", labelTransform(l)).
			SetText(l.Label))
	}

	return []*element.Node{row, legend}, nil
}
