package linechart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/style"
)

func TestPoints(t *testing.T) {
	r := Renderer{Width: 100, Height: 100, Padding: 10}
	m := chart.Line([]float64{0, 10, 5}, []string{"a", "b", "c"})

	pts := r.Points(m.Items())
	require.Len(t, pts, 3)
	assert.Equal(t, Point{X: 10, Y: 90, Label: "a"}, pts[0])
	assert.Equal(t, Point{X: 50, Y: 10, Label: "b"}, pts[1])
	assert.Equal(t, Point{X: 90, Y: 50, Label: "c"}, pts[2])
}

func TestPointsFlatAndSingle(t *testing.T) {
	r := Renderer{Width: 100, Height: 60, Padding: 10}

	flat := r.Points(chart.Line([]float64{3, 3}, []string{"a", "b"}).Items())
	assert.Equal(t, 30, flat[0].Y)
	assert.Equal(t, 30, flat[1].Y)

	single := r.Points(chart.Line([]float64{7}, []string{"a"}).Items())
	assert.Equal(t, Point{X: 50, Y: 30, Label: "a"}, single[0])

	assert.Nil(t, r.Points(nil))
}

func TestRenderThroughModel(t *testing.T) {
	m := chart.Line([]float64{1, 3, 2}, []string{"jan", "feb", "mar"}).
		SetTitle("Q1").
		SetColours("red")

	root, err := m.Render(chart.WithLineRenderer(New()))
	require.NoError(t, err)

	nodes := root.Find(style.ChartElements)
	require.Len(t, nodes, 1)
	raw := nodes[0].Raw
	assert.True(t, strings.HasPrefix(raw, "<svg"), raw)
	assert.NotContains(t, raw, "<?xml")
	assert.Contains(t, raw, "<polyline")
	assert.Contains(t, raw, "stroke:red")
	assert.Contains(t, raw, "stroke-width:2")
	assert.Contains(t, raw, ">feb</text>")
	assert.Equal(t, 3, strings.Count(raw, "<circle"))
	assert.Equal(t, m.Styles().Lookup(style.ChartElements), nodes[0].Style)

	out, err := element.HTML(root)
	require.NoError(t, err)
	assert.Contains(t, out, "<polyline")
}

func TestRenderEscapesLabels(t *testing.T) {
	m := chart.Line([]float64{1}, []string{"a<b"})
	n := New().RenderLine(m, m.Styles().Lookup)
	assert.Contains(t, n.Raw, "a&lt;b")
}

func TestRenderEmpty(t *testing.T) {
	m := chart.Line(nil, nil)
	n := New().RenderLine(m, m.Styles().Lookup)
	assert.NotContains(t, n.Raw, "<polyline")
	assert.Contains(t, n.Raw, "</svg>")
}
