package definition

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/errs"
)

// LoadWorkbook reads chart data from a sheet: column A holds the labels and
// column B the values. A first row whose B cell is not a number is taken as
// a header and its A cell becomes the title. Rows without a numeric B cell
// are skipped. An empty sheet name selects the first sheet.
//
// The returned File is a vertical bar chart; callers may change Type and add
// colours or styles before building the model.
func LoadWorkbook(path, sheet string) (File, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return File{}, &errs.DefinitionError{Source: path, Err: err}
	}
	defer wb.Close()

	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return File{}, &errs.DefinitionError{Source: path, Field: "sheet", Err: errs.ErrNoData}
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return File{}, &errs.DefinitionError{Source: path, Field: "sheet", Err: err}
	}

	f := File{Type: chart.BarVertical.String(), Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), source: path}
	for i, row := range rows {
		label, raw := cell(row, 0), cell(row, 1)
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			if i == 0 && label != "" {
				f.Title = label
			}
			continue
		}
		f.Labels = append(f.Labels, label)
		f.Values = append(f.Values, v)
	}
	if len(f.Values) == 0 {
		return File{}, &errs.DefinitionError{Source: path, Field: sheet, Err: errs.ErrNoData}
	}
	return f, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
