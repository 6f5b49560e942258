package chart

import "github.com/tinywasm/chart/errs"

// Normalizer maps raw values onto the 0..100 scale. It returns a new slice and
// leaves its input untouched.
type Normalizer interface {
	Normalize(items []DataItem) ([]DataItem, error)
}

// MaxRelative scales every value against the largest one, so the largest
// item gets 100. Used by bar charts.
type MaxRelative struct{}

// Normalize never fails. When every value is 0 every item gets 0.
func (MaxRelative) Normalize(items []DataItem) ([]DataItem, error) {
	out := append([]DataItem(nil), items...)
	if len(out) == 0 {
		return out, nil
	}
	top := out[0].Value
	for _, it := range out[1:] {
		top = max(top, it.Value)
	}
	for i := range out {
		if top == 0 {
			out[i].NormValue = 0
			continue
		}
		out[i].NormValue = out[i].Value / top * 100
	}
	return out, nil
}

// TotalRelative scales every value against the sum of all values, so the
// items add up to 100. Used by pie charts.
type TotalRelative struct{}

// Normalize returns a *errs.DegenerateInputError when the values sum to 0.
func (TotalRelative) Normalize(items []DataItem) ([]DataItem, error) {
	out := append([]DataItem(nil), items...)
	if len(out) == 0 {
		return out, nil
	}
	var total float64
	for _, it := range out {
		total += it.Value
	}
	if total == 0 {
		return nil, &errs.DegenerateInputError{Chart: PieChart.String(), Total: total}
	}
	for i := range out {
		out[i].NormValue = out[i].Value / total * 100
	}
	return out, nil
}

// NormalizerFor returns the strategy for t, or nil for line charts and
// unknown types.
func NormalizerFor(t ChartType) Normalizer {
	l, err := layoutFor(t)
	if err != nil {
		return nil
	}
	return l.normalizer()
}
