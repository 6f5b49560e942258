package chart

// HBar builds a horizontal bar chart. Values are normalized right away and
// each label gets its value appended, eg: "a" -> "a 10".
func HBar(values []float64, labels []string) Model {
	m := New(values, labels, BarHorizontal).seed(baseStyles).seed(hBarStyles)
	// max-relative normalization cannot fail
	m, _ = m.Normalize()
	return m.AddValueToLabel()
}

// VBar builds a vertical bar chart with rotated labels under the bars.
func VBar(values []float64, labels []string) Model {
	return New(values, labels, BarVertical).seed(baseStyles).seed(vBarStyles)
}

// Pie builds a pie chart. Slices take colours from the palette in order.
func Pie(values []float64, labels []string) Model {
	return New(values, labels, PieChart).seed(baseStyles).seed(pieStyles)
}

// Line builds a line chart. Rendering it needs a LineRenderer, see
// WithLineRenderer.
func Line(values []float64, labels []string) Model {
	return New(values, labels, LineChart).seed(baseStyles).seed(lineStyles)
}
