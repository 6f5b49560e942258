package chart

import (
	"github.com/tinywasm/chart/style"
	"github.com/tinywasm/chart/utils"
)

// DataItem is one labelled value. NormValue stays 0 until a Normalizer runs.
type DataItem struct {
	Value     float64 `json:"value"`
	NormValue float64 `json:"normValue"`
	Label     string  `json:"label"`
}

// Model is an immutable chart description. Every method that changes it
// returns a new Model; the receiver and the result never share memory.
type Model struct {
	title      string
	chartType  ChartType
	colours    []string
	items      []DataItem
	styles     style.Cascade
	normalized bool
}

// New zips values and labels by position into a model of type t. When the
// lengths differ the extra entries of the longer list are dropped. The model
// has no title, the single colour DefaultColour and an empty style cascade.
func New(values []float64, labels []string, t ChartType) Model {
	n := min(len(values), len(labels))
	items := make([]DataItem, n)
	for i := range n {
		items[i] = DataItem{Value: values[i], Label: labels[i]}
	}
	return Model{
		chartType: t,
		colours:   []string{DefaultColour},
		items:     items,
		styles:    style.New(),
	}
}

func (m Model) clone() Model {
	out := m
	out.colours = append([]string(nil), m.colours...)
	out.items = append([]DataItem(nil), m.items...)
	out.styles = m.styles.Clone()
	return out
}

func (m Model) Title() string { return m.title }

func (m Model) Type() ChartType { return m.chartType }

// Colours returns a copy of the palette; the first entry is the series colour.
func (m Model) Colours() []string { return append([]string(nil), m.colours...) }

// Items returns a copy of the data items.
func (m Model) Items() []DataItem { return append([]DataItem(nil), m.items...) }

// Styles returns a copy of the style cascade.
func (m Model) Styles() style.Cascade { return m.styles.Clone() }

// Normalized reports whether NormValue has been computed for the items.
func (m Model) Normalized() bool { return m.normalized }

// SetTitle replaces the title.
func (m Model) SetTitle(text string) Model {
	out := m.clone()
	out.title = text
	return out
}

// SetColours changes the chart colours. With no colours the model is returned
// as is. A pie chart takes the whole list and cycles through it; any other
// chart only uses the first colour, as the background of the chart region.
func (m Model) SetColours(colours ...string) Model {
	if len(colours) == 0 {
		return m
	}
	out := m.clone()
	if m.chartType == PieChart {
		out.colours = append([]string(nil), colours...)
		return out
	}
	out.styles = out.styles.Override(style.Chart, style.P("background-color", colours[0]))
	return out
}

// AddValueToLabel appends " <value>" to every label. Calling it twice appends
// the value twice.
func (m Model) AddValueToLabel() Model {
	out := m.clone()
	for i := range out.items {
		out.items[i].Label += " " + utils.FormatNumber(out.items[i].Value)
	}
	return out
}

// MergeStyles overrides properties of region. Properties already present are
// replaced and moved to the front. A region the constructor did not seed is
// left untouched.
func (m Model) MergeStyles(region string, props ...style.Property) Model {
	out := m.clone()
	out.styles = out.styles.Override(region, props...)
	return out
}

// Normalize computes NormValue with the strategy of the chart type. Line
// charts are returned unchanged: their renderer scales values itself.
func (m Model) Normalize() (Model, error) {
	n := NormalizerFor(m.chartType)
	if n == nil || len(m.items) == 0 {
		return m, nil
	}
	items, err := n.Normalize(m.items)
	if err != nil {
		return m, err
	}
	out := m.clone()
	out.items = items
	out.normalized = true
	return out, nil
}

func (m Model) seed(rows []styleRow) Model {
	out := m.clone()
	for _, r := range rows {
		out.styles = out.styles.Seed(r.region, r.props...)
	}
	return out
}
