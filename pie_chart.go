package chart

import (
	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/style"
	"github.com/tinywasm/chart/utils"
)

// Arc is one pie slice in circle units (a full circle is PieUnits).
// Offset is where the slice starts, Length how much of the circle it takes.
type Arc struct {
	Label  string
	Offset float64
	Length float64
	Colour string
}

// palette hands out colours in order and starts over once exhausted.
type palette struct {
	all  []string
	rest []string
}

func (p *palette) next() string {
	if len(p.rest) == 0 {
		p.rest = p.all
	}
	c := p.rest[0]
	p.rest = p.rest[1:]
	return c
}

// PieArcs lays the items around the circle. The first slice starts at 0 and
// every following one starts where the previous ended, so the offsets run
// 0, -a, -(a+b)... in stroke-dashoffset terms.
func PieArcs(items []DataItem, colours []string) ([]Arc, error) {
	if len(colours) == 0 {
		return nil, errs.ErrNoColours
	}
	pal := palette{all: colours}
	arcs := make([]Arc, len(items))
	offset := 0.0
	for i, it := range items {
		arcs[i] = Arc{
			Label:  it.Label,
			Offset: offset,
			Length: it.NormValue,
			Colour: pal.next(),
		}
		offset -= it.NormValue
	}
	return arcs, nil
}

const (
	pieViewBox = "0 0 32 32"
	pieRadius  = "16"
	pieCentre  = "16"
)

type pieLayout struct{}

func (pieLayout) normalizer() Normalizer { return TotalRelative{} }

// render: an svg circle whose slices are dashed strokes of one circle each,
// followed by a legend listing the labels in their slice colour.
func (pieLayout) render(m Model, _ renderer) ([]*element.Node, error) {
	arcs, err := PieArcs(m.items, m.colours)
	if err != nil {
		return nil, err
	}

	svg := element.New("svg", style.Chart, m.styles.Lookup(style.Chart)).
		SetAttr("viewBox", pieViewBox)
	legend := element.New("div", style.Legend, m.styles.Lookup(style.Legend))

	for _, a := range arcs {
		svg.Append(element.New("circle", style.ChartElements, m.styles.Lookup(style.ChartElements)).
			SetAttr("r", pieRadius).
			SetAttr("cx", pieCentre).
			SetAttr("cy", pieCentre).
			SetAttr("stroke", a.Colour).
			SetAttr("stroke-dasharray", utils.FormatNumber(a.Length)+" "+utils.FormatNumber(PieUnits)).
			SetAttr("stroke-dashoffset", utils.FormatNumber(a.Offset)))

		legend.Append(element.New("div", style.LegendLabels, m.styles.Lookup(style.LegendLabels)).
			SetLayout("color", a.Colour).
			SetText(a.Label))
	}

	return []*element.Node{svg, legend}, nil
}
