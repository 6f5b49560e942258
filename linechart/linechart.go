// Package linechart draws line charts as svg markup with svgo.
//
// A Renderer plugs into chart.Model.Render through chart.WithLineRenderer.
// Values are scaled between the smallest and the largest one, so unlike bar
// and pie charts the model is drawn from its raw values.
package linechart

import (
	"bytes"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/style"
)

const (
	defaultWidth   = 400
	defaultHeight  = 300
	defaultPadding = 30
	pointRadius    = 3
)

// Renderer holds the canvas size in pixels.
type Renderer struct {
	Width   int
	Height  int
	Padding int
}

func New() Renderer {
	return Renderer{Width: defaultWidth, Height: defaultHeight, Padding: defaultPadding}
}

// Point is a plotted value in canvas coordinates.
type Point struct {
	X, Y  int
	Label string
}

// Points maps the items onto the canvas. The first item sits on the left
// edge and the last on the right; y grows downwards as in svg.
func (r Renderer) Points(items []chart.DataItem) []Point {
	n := len(items)
	if n == 0 {
		return nil
	}
	lo, hi := items[0].Value, items[0].Value
	for _, it := range items[1:] {
		lo = min(lo, it.Value)
		hi = max(hi, it.Value)
	}

	plotW := float64(r.Width - 2*r.Padding)
	plotH := float64(r.Height - 2*r.Padding)
	pts := make([]Point, n)
	for i, it := range items {
		x := float64(r.Width) / 2
		if n > 1 {
			x = float64(r.Padding) + float64(i)*plotW/float64(n-1)
		}
		y := float64(r.Height) / 2
		if hi > lo {
			y = float64(r.Padding) + (hi-it.Value)/(hi-lo)*plotH
		}
		pts[i] = Point{X: int(x + 0.5), Y: int(y + 0.5), Label: it.Label}
	}
	return pts
}

// RenderLine implements chart.LineRenderer. The series colour is the
// background-color of the chart region; chart-elements properties style the
// line and legend-labels properties style the axis labels.
func (r Renderer) RenderLine(m chart.Model, lookup chart.StyleLookup) *element.Node {
	colour := chart.DefaultColour
	for _, p := range lookup(style.Chart) {
		if p.Name == "background-color" {
			colour = p.Value
			break
		}
	}

	pts := r.Points(m.Items())
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(r.Width, r.Height)
	if m.Title() != "" {
		canvas.Title(m.Title())
	}
	base := r.Height - r.Padding/2
	canvas.Line(r.Padding, r.Height-r.Padding, r.Width-r.Padding, r.Height-r.Padding, "stroke:grey")
	if len(pts) > 0 {
		canvas.Polyline(xs, ys, style.Inline([]style.Property{style.P("stroke", colour)}, lookup(style.ChartElements)))
	}
	labelStyle := style.Inline([]style.Property{style.P("text-anchor", "middle")}, lookup(style.LegendLabels))
	for _, p := range pts {
		canvas.Circle(p.X, p.Y, pointRadius, "fill:"+colour)
		canvas.Text(p.X, base, p.Label, labelStyle)
	}
	canvas.End()

	return element.New("div", style.ChartElements, lookup(style.ChartElements)).
		SetRaw(trimProlog(buf.String()))
}

// trimProlog drops the xml declaration and comment svgo writes before the
// root element so the markup can be embedded in html.
func trimProlog(s string) string {
	if i := strings.Index(s, "<svg"); i > 0 {
		return s[i:]
	}
	return s
}
