package chart

import (
	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/style"
)

// StyleLookup resolves the property list of a region.
type StyleLookup func(region string) []style.Property

// LineRenderer draws a line chart. It receives the model as built (values are
// not normalized) and owns the structure of the subtree it returns.
type LineRenderer interface {
	RenderLine(m Model, lookup StyleLookup) *element.Node
}

// LineRendererFunc adapts a function to LineRenderer.
type LineRendererFunc func(m Model, lookup StyleLookup) *element.Node

func (f LineRendererFunc) RenderLine(m Model, lookup StyleLookup) *element.Node {
	return f(m, lookup)
}

type lineLayout struct{}

func (lineLayout) normalizer() Normalizer { return nil }

func (lineLayout) render(m Model, r renderer) ([]*element.Node, error) {
	if r.line == nil {
		return nil, errs.ErrNoLineRenderer
	}
	return []*element.Node{r.line.RenderLine(m, m.styles.Lookup)}, nil
}
