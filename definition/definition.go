// Package definition builds chart models from declarative files.
//
// A definition lists the chart type, its data and the customizations to apply:
//
//	type: pie
//	title: Sales
//	values: [1, 1, 2]
//	labels: [north, south, east]
//	colours: [red, blue]
//	styles:
//	  legend-labels:
//	    - {name: font-size, value: 14px}
//
// YAML and TOML files are read directly; xlsx workbooks provide the data only
// (see LoadWorkbook) and take the rest from the caller.
package definition

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tinywasm/fmt"
	"gopkg.in/yaml.v3"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/style"
)

// Format is a definition file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXLSX Format = "xlsx"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch fmt.Convert(filepath.Ext(path)).ToLower().String() {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", &errs.DefinitionError{Source: path, Err: errs.ErrUnsupportedFormat}
}

// File is a decoded chart definition.
type File struct {
	Type        string                      `json:"type" yaml:"type" toml:"type"`
	Title       string                      `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Values      []float64                   `json:"values" yaml:"values" toml:"values"`
	Labels      []string                    `json:"labels" yaml:"labels" toml:"labels"`
	Colours     []string                    `json:"colours,omitempty" yaml:"colours,omitempty" toml:"colours,omitempty"`
	ValueLabels bool                        `json:"value_labels,omitempty" yaml:"value_labels,omitempty" toml:"value_labels,omitempty"`
	Styles      map[string][]style.Property `json:"styles,omitempty" yaml:"styles,omitempty" toml:"styles,omitempty"`

	// source names the file in errors; empty for in-memory definitions.
	source string
}

// Decode reads a YAML or TOML definition from r.
func Decode(r io.Reader, format Format) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, &errs.DefinitionError{Err: err}
	}
	return Parse(data, format)
}

// Parse decodes a YAML or TOML definition.
func Parse(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return File{}, &errs.DefinitionError{Err: err}
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, &errs.DefinitionError{Err: err}
		}
	default:
		return File{}, &errs.DefinitionError{Err: errs.ErrUnsupportedFormat}
	}
	return f, nil
}

// ReadFile decodes the definition at path. Workbooks are read with
// LoadWorkbook using the first sheet.
func ReadFile(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}
	if format == FormatXLSX {
		return LoadWorkbook(path, "")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, &errs.DefinitionError{Source: path, Err: err}
	}
	f, err := Parse(data, format)
	if err != nil {
		if de, ok := err.(*errs.DefinitionError); ok {
			de.Source = path
		}
		return File{}, err
	}
	f.source = path
	return f, nil
}

// Load reads the definition at path and builds its model.
func Load(path string) (chart.Model, error) {
	f, err := ReadFile(path)
	if err != nil {
		return chart.Model{}, err
	}
	return f.Model()
}

// Model builds the chart: the constructor of Type, then the title, colours,
// value labels and style overrides in that order. Styles only override
// regions the constructor seeded; naming a region outside the chart
// vocabulary is an error.
func (f File) Model() (chart.Model, error) {
	t, err := chart.ParseChartType(f.Type)
	if err != nil {
		return chart.Model{}, f.fail("type", err)
	}

	var m chart.Model
	switch t {
	case chart.BarHorizontal:
		m = chart.HBar(f.Values, f.Labels)
	case chart.BarVertical:
		m = chart.VBar(f.Values, f.Labels)
	case chart.PieChart:
		m = chart.Pie(f.Values, f.Labels)
	case chart.LineChart:
		m = chart.Line(f.Values, f.Labels)
	}

	if f.Title != "" {
		m = m.SetTitle(f.Title)
	}
	m = m.SetColours(f.Colours...)
	// hbar labels already carry their value
	if f.ValueLabels && t != chart.BarHorizontal {
		m = m.AddValueToLabel()
	}

	regions := make([]string, 0, len(f.Styles))
	for r := range f.Styles {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	for _, r := range regions {
		if !style.IsRegion(r) {
			return chart.Model{}, f.fail("styles."+r, errs.ErrUnknownRegion)
		}
		m = m.MergeStyles(r, f.Styles[r]...)
	}
	return m, nil
}

func (f File) fail(field string, err error) error {
	return &errs.DefinitionError{Source: f.source, Field: field, Err: err}
}
