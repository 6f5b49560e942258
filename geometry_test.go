package chart

import (
	"errors"
	"testing"

	"github.com/tinywasm/chart/errs"
)

func TestLabelOffset(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{2, 6, 20},
		{2, 5, -10},
		{0, 6, 140},
		{5, 6, -160},
		{0, 5, 110},
		{4, 5, -130},
		{0, 1, -10},
		{0, 2, 20},
		{1, 2, -40},
	}
	for _, tt := range tests {
		if got := LabelOffset(tt.i, tt.n); got != tt.want {
			t.Errorf("LabelOffset(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestVerticalBars(t *testing.T) {
	m, err := VBar([]float64{1, 2, 4}, []string{"a", "b", "c"}).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	bars, labels := VerticalBars(m.Items())
	wantPct := []float64{25, 50, 100}
	wantOff := []int{50, -10, -70}
	for i := range bars {
		if bars[i].Percent != wantPct[i] {
			t.Errorf("bar %d = %v%%, want %v%%", i, bars[i].Percent, wantPct[i])
		}
		if labels[i].Offset != wantOff[i] || labels[i].Rotate != -45 {
			t.Errorf("label %d = %+v", i, labels[i])
		}
	}
	if got := labelTransform(labels[0]); got != "translateX(50px) rotate(-45deg)" {
		t.Errorf("transform = %q", got)
	}
}

func TestPieArcs(t *testing.T) {
	m, err := Pie([]float64{1, 1, 2}, []string{"x", "y", "z"}).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	arcs, err := PieArcs(m.Items(), []string{"red", "blue"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Arc{
		{Label: "x", Offset: 0, Length: 25, Colour: "red"},
		{Label: "y", Offset: -25, Length: 25, Colour: "blue"},
		{Label: "z", Offset: -50, Length: 50, Colour: "red"},
	}
	for i := range want {
		if arcs[i] != want[i] {
			t.Errorf("arc %d = %+v, want %+v", i, arcs[i], want[i])
		}
	}
}

func TestPieArcsDefaultPalette(t *testing.T) {
	m, _ := Pie([]float64{1, 1, 2}, []string{"x", "y", "z"}).Normalize()
	arcs, err := PieArcs(m.Items(), m.Colours())
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range arcs {
		if a.Colour != DefaultColour {
			t.Errorf("%s colour = %q", a.Label, a.Colour)
		}
	}
}

func TestPieArcsNoColours(t *testing.T) {
	if _, err := PieArcs(items(1), nil); !errors.Is(err, errs.ErrNoColours) {
		t.Fatalf("err = %v", err)
	}
}
