package ui

import (
	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/definition"
	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/linechart"
)

// Draw builds the chart of f and returns its html markup.
func Draw(f definition.File) (string, error) {
	m, err := f.Model()
	if err != nil {
		return "", err
	}
	root, err := m.Render(chart.WithLineRenderer(linechart.New()))
	if err != nil {
		return "", err
	}
	return element.HTML(root)
}
