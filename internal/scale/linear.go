// Package scale maps continuous data-space intervals onto pixel intervals.
package scale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrDegenerate is returned when a domain or range has zero width
	ErrDegenerate = errors.New("degenerate interval")
	// ErrNonFinite is returned for NaN or infinite bounds
	ErrNonFinite = errors.New("non-finite bound")
)

// minusSign is the typographic minus used in tick labels
const minusSign = "−"

// Linear maps [DomainMin, DomainMax] onto [RangeMin, RangeMax] by proportional
// interpolation. RangeMin may be greater than RangeMax (flipped axis).
type Linear struct {
	DomainMin float64
	DomainMax float64
	RangeMin  float64
	RangeMax  float64
}

// NewLinear validates the bounds and returns a linear scale
func NewLinear(domainMin, domainMax, rangeMin, rangeMax float64) (Linear, error) {
	for _, v := range []float64{domainMin, domainMax, rangeMin, rangeMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Linear{}, fmt.Errorf("scale [%g,%g]->[%g,%g]: %w", domainMin, domainMax, rangeMin, rangeMax, ErrNonFinite)
		}
	}
	if domainMin == domainMax {
		return Linear{}, fmt.Errorf("domain [%g,%g]: %w", domainMin, domainMax, ErrDegenerate)
	}
	if rangeMin == rangeMax {
		return Linear{}, fmt.Errorf("range [%g,%g]: %w", rangeMin, rangeMax, ErrDegenerate)
	}
	return Linear{
		DomainMin: domainMin,
		DomainMax: domainMax,
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
	}, nil
}

// MustLinear is like NewLinear but panics on invalid bounds.
// Only for compile-time constant bounds.
func MustLinear(domainMin, domainMax, rangeMin, rangeMax float64) Linear {
	s, err := NewLinear(domainMin, domainMax, rangeMin, rangeMax)
	if err != nil {
		panic(err)
	}
	return s
}

// Map converts a domain value to its range value. Values outside the domain
// are extrapolated.
func (s Linear) Map(v float64) float64 {
	t := (v - s.DomainMin) / (s.DomainMax - s.DomainMin)
	return s.RangeMin + t*(s.RangeMax-s.RangeMin)
}

// Invert converts a range value back to the domain
func (s Linear) Invert(px float64) float64 {
	t := (px - s.RangeMin) / (s.RangeMax - s.RangeMin)
	return s.DomainMin + t*(s.DomainMax-s.DomainMin)
}

// Round rounds half up (toward +Inf), so -2.5 becomes -2 and 2.5 becomes 3
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// FormatInteger formats v as an integer tick label
func FormatInteger(v float64) string {
	r := math.Round(v)
	if r == 0 {
		// avoids "-0"
		return "0"
	}
	if r < 0 {
		return minusSign + strconv.FormatFloat(-r, 'f', 0, 64)
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}
