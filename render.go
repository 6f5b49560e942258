package chart

import (
	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/style"
)

// layout is the per chart type strategy: how values are normalized and how
// the chart-container content is built.
type layout interface {
	normalizer() Normalizer
	render(m Model, r renderer) ([]*element.Node, error)
}

func layoutFor(t ChartType) (layout, error) {
	switch t {
	case BarHorizontal:
		return hBarLayout{}, nil
	case BarVertical:
		return vBarLayout{}, nil
	case PieChart:
		return pieLayout{}, nil
	case LineChart:
		return lineLayout{}, nil
	}
	return nil, errs.ErrUnknownChartType
}

type renderer struct {
	line LineRenderer
}

// RenderOption configures Render.
type RenderOption func(*renderer)

// WithLineRenderer sets the renderer that draws line charts.
func WithLineRenderer(lr LineRenderer) RenderOption {
	return func(r *renderer) {
		r.line = lr
	}
}

// Render normalizes the model when needed and builds its element tree:
//
//	container
//	├── title
//	└── chart-container
//	    └── chart type content
//
// Every node carries the property list of its region; computed geometry
// (bar lengths, label transforms, arc dashes) is kept in Layout and Attrs.
func (m Model) Render(opts ...RenderOption) (*element.Node, error) {
	var r renderer
	for _, o := range opts {
		o(&r)
	}

	l, err := layoutFor(m.chartType)
	if err != nil {
		return nil, err
	}
	if !m.normalized {
		if m, err = m.Normalize(); err != nil {
			return nil, err
		}
	}

	content, err := l.render(m, r)
	if err != nil {
		return nil, err
	}

	root := element.New("div", style.Container, m.styles.Lookup(style.Container))
	title := element.New("h3", style.Title, m.styles.Lookup(style.Title)).SetText(m.title)
	body := element.New("div", style.ChartContainer, m.styles.Lookup(style.ChartContainer)).
		Append(content...)
	return root.Append(title, body), nil
}
