package scale

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestLinear_PrimaryX(t *testing.T) {
	x := MustLinear(0, 500, 0, 420)

	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{500, 420},
		{250, 210},
		{100, 84},
	}

	for _, test := range tests {
		if got := x.Map(test.in); !almostEqual(got, test.expected) {
			t.Errorf("Map(%v) = %v, expected %v", test.in, got, test.expected)
		}
	}
}

func TestLinear_FlippedY(t *testing.T) {
	y := MustLinear(0, 300, 250, 0)

	if got := y.Map(0); !almostEqual(got, 250) {
		t.Errorf("Map(0) = %v, expected 250", got)
	}
	if got := y.Map(300); !almostEqual(got, 0) {
		t.Errorf("Map(300) = %v, expected 0", got)
	}
	if got := y.Invert(125); !almostEqual(got, 150) {
		t.Errorf("Invert(125) = %v, expected 150", got)
	}
}

func TestLinear_RoundTrip(t *testing.T) {
	scales := []Linear{
		MustLinear(0, 500, 0, 420),
		MustLinear(0, 300, 250, 0),
		MustLinear(0, 50, 0, 420),
	}

	for _, s := range scales {
		for i := 0; i <= 100; i++ {
			v := s.DomainMin + float64(i)*(s.DomainMax-s.DomainMin)/100
			if got := s.Invert(s.Map(v)); math.Abs(got-v) > 1e-6 {
				t.Errorf("%+v: Invert(Map(%v)) = %v", s, v, got)
			}
		}
	}
}

func TestNewLinear_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		bounds [4]float64
		want   error
	}{
		{"empty domain", [4]float64{5, 5, 0, 100}, ErrDegenerate},
		{"empty range", [4]float64{0, 10, 7, 7}, ErrDegenerate},
		{"nan", [4]float64{math.NaN(), 10, 0, 100}, ErrNonFinite},
		{"inf", [4]float64{0, math.Inf(1), 0, 100}, ErrNonFinite},
	}

	for _, test := range tests {
		_, err := NewLinear(test.bounds[0], test.bounds[1], test.bounds[2], test.bounds[3])
		if !errors.Is(err, test.want) {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, err)
		}
	}
}

func TestMustLinear_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustLinear to panic on a degenerate domain")
		}
	}()
	MustLinear(1, 1, 0, 10)
}

func TestRound(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{49.5, 50},
		{49.49, 49},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
	}

	for _, test := range tests {
		if got := Round(test.in); got != test.expected {
			t.Errorf("Round(%v) = %v, expected %v", test.in, got, test.expected)
		}
	}
}

func TestFormatInteger(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{100, "100"},
		{499.6, "500"},
		{-0.2, "0"},
		{-40, "−40"},
	}

	for _, test := range tests {
		if got := FormatInteger(test.in); got != test.expected {
			t.Errorf("FormatInteger(%v) = %q, expected %q", test.in, got, test.expected)
		}
	}
}
