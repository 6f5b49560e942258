package definition

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/style"
)

const pieYAML = `
type: pie
title: Sales
values: [1, 1, 2]
labels: [north, south, east]
colours: [red, blue]
value_labels: true
styles:
  legend-labels:
    - {name: font-size, value: 14px}
`

const barTOML = `
type = "hbar"
title = "Costs"
values = [10.0, 20.0, 5.0]
labels = ["a", "b", "c"]
colours = ["green"]
value_labels = true

[[styles.chart]]
name = "padding"
value = "6px"
`

func TestParseYAML(t *testing.T) {
	f, err := Parse([]byte(pieYAML), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "pie", f.Type)
	assert.Equal(t, []float64{1, 1, 2}, f.Values)
	assert.Equal(t, []style.Property{style.P("font-size", "14px")}, f.Styles[style.LegendLabels])

	m, err := f.Model()
	require.NoError(t, err)
	assert.Equal(t, chart.PieChart, m.Type())
	assert.Equal(t, "Sales", m.Title())
	assert.Equal(t, []string{"red", "blue"}, m.Colours())
	assert.Equal(t, "north 1", m.Items()[0].Label)
	assert.Equal(t, style.P("font-size", "14px"), m.Styles().Lookup(style.LegendLabels)[0])
	assert.Len(t, m.Styles().Lookup(style.LegendLabels), 2)
}

func TestParseTOML(t *testing.T) {
	f, err := Parse([]byte(barTOML), FormatTOML)
	require.NoError(t, err)

	m, err := f.Model()
	require.NoError(t, err)
	assert.Equal(t, chart.BarHorizontal, m.Type())

	// value labels are not appended twice to hbar charts
	labels := []string{}
	for _, it := range m.Items() {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{"a 10", "b 20", "c 5"}, labels)

	v, _ := m.Styles().Value(style.Chart, "padding")
	assert.Equal(t, "6px", v)
	v, _ = m.Styles().Value(style.Chart, "background-color")
	assert.Equal(t, "green", v)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("type: pie\nshape: round\n"), FormatYAML)
	var de *errs.DefinitionError
	require.ErrorAs(t, err, &de)

	_, err = Parse([]byte("{}"), Format("json"))
	assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)

	_, err = Parse([]byte("type = "), FormatTOML)
	assert.Error(t, err)
}

func TestModelErrors(t *testing.T) {
	_, err := File{Type: "donut"}.Model()
	var de *errs.DefinitionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "type", de.Field)
	assert.ErrorIs(t, err, errs.ErrUnknownChartType)

	_, err = File{Type: "pie", Styles: map[string][]style.Property{
		"sidebar": {style.P("color", "red")},
	}}.Model()
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "styles.sidebar", de.Field)
	assert.True(t, errors.Is(err, errs.ErrUnknownRegion))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.yml")
	require.NoError(t, os.WriteFile(path, []byte(pieYAML), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sales", m.Title())

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("type: [\n"), 0644))
	_, err = Load(bad)
	var de *errs.DefinitionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, bad, de.Source)
	assert.True(t, strings.HasPrefix(err.Error(), bad))

	_, err = Load(filepath.Join(dir, "chart.json"))
	assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.toml": FormatTOML,
		"a.xlsx": FormatXLSX,
	}
	for path, want := range tests {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatOf("a.csv")
	assert.Error(t, err)
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()
	for i, row := range rows {
		for j, v := range row {
			c, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, wb.SetCellValue("Sheet1", c, v))
		}
	}
	path := filepath.Join(t.TempDir(), "quarters.xlsx")
	require.NoError(t, wb.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Revenue", "amount"},
		{"q1", 10},
		{"q2", 20.5},
		{"notes", "n/a"},
		{"q3", 5},
	})

	f, err := LoadWorkbook(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Revenue", f.Title)
	assert.Equal(t, []string{"q1", "q2", "q3"}, f.Labels)
	assert.Equal(t, []float64{10, 20.5, 5}, f.Values)
	assert.Equal(t, "vbar", f.Type)

	f.Type = "pie"
	m, err := f.Model()
	require.NoError(t, err)
	assert.Equal(t, chart.PieChart, m.Type())
	assert.Len(t, m.Items(), 3)
}

func TestLoadWorkbookWithoutHeader(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"a", 1},
		{"b", 2},
	})
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "quarters", m.Title())
	assert.Equal(t, chart.BarVertical, m.Type())
	assert.Len(t, m.Items(), 2)
}

func TestLoadWorkbookErrors(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"only", "text"}})
	_, err := LoadWorkbook(path, "")
	assert.ErrorIs(t, err, errs.ErrNoData)

	_, err = LoadWorkbook(path, "Missing")
	assert.Error(t, err)

	_, err = LoadWorkbook(filepath.Join(t.TempDir(), "none.xlsx"), "")
	assert.Error(t, err)
}
