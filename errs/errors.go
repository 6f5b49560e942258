package errs

import "strconv"

var (
	// ErrDegenerateInput is matched by every DegenerateInputError.
	ErrDegenerateInput = New("degenerate input")

	ErrNoColours = New("colour list is empty")

	ErrNoLineRenderer = New("no line renderer configured")

	ErrUnknownChartType = New("unknown chart type")

	ErrUnknownRegion = New("unknown style region")

	ErrUnsupportedFormat = New("unsupported definition format")

	ErrNoData = New("no data rows")
)

// DegenerateInputError reports data that cannot be normalized, such as a pie
// whose values add up to zero.
type DegenerateInputError struct {
	Chart string  // chart type name
	Total float64 // the divisor that was rejected
}

func (e *DegenerateInputError) Error() string {
	return New(e.Chart, ':', "values sum to", e.Total, "and cannot be normalized").Error()
}

// Is makes errors.Is(err, ErrDegenerateInput) hold.
func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}

// DefinitionError reports a chart definition that could not be turned into a
// model. Field names the offending entry, eg: "type" or "styles.legend".
type DefinitionError struct {
	Source string
	Field  string
	Err    error
}

func (e *DefinitionError) Error() string {
	src := e.Source
	if src == "" {
		src = "definition"
	}
	if e.Field == "" {
		return New(src, ':', e.Err).Error()
	}
	return New(src, ':', "field", strconv.Quote(e.Field), ':', e.Err).Error()
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}
