// Package style resolves the visual presentation of chart elements from a
// class-name stylesheet, the way a CSS file styles the same elements by class.
package style

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrInvalidColor is returned for colour strings that cannot be parsed
var ErrInvalidColor = errors.New("invalid color")

// Universal is the rule applied to every element before its classes
const Universal = "*"

// Style is a set of presentation attributes. Zero fields are unset and do not
// override anything when merged.
type Style struct {
	Stroke        drawing.Color
	StrokeWidth   float64
	StrokeOpacity float64 // 0 = unset, otherwise (0,1]
	Dash          []float64
	Fill          drawing.Color
	FontSize      float64
	TextColor     drawing.Color
}

// Merge returns s with every set field of o applied on top
func (s Style) Merge(o Style) Style {
	if !o.Stroke.IsZero() {
		s.Stroke = o.Stroke
	}
	if o.StrokeWidth > 0 {
		s.StrokeWidth = o.StrokeWidth
	}
	if o.StrokeOpacity > 0 {
		s.StrokeOpacity = o.StrokeOpacity
	}
	if o.Dash != nil {
		s.Dash = append([]float64(nil), o.Dash...)
	}
	if !o.Fill.IsZero() {
		s.Fill = o.Fill
	}
	if o.FontSize > 0 {
		s.FontSize = o.FontSize
	}
	if !o.TextColor.IsZero() {
		s.TextColor = o.TextColor
	}
	return s
}

// EffectiveStroke returns the stroke colour with StrokeOpacity folded into alpha
func (s Style) EffectiveStroke() drawing.Color {
	if s.StrokeOpacity <= 0 || s.StrokeOpacity >= 1 {
		return s.Stroke
	}
	return s.Stroke.WithAlpha(uint8(float64(s.Stroke.A)*s.StrokeOpacity + 0.5))
}

// StrokeNRGBA returns EffectiveStroke as a color.NRGBA for canvas objects
func (s Style) StrokeNRGBA() color.NRGBA {
	return toNRGBA(s.EffectiveStroke())
}

// FillNRGBA returns the fill colour as a color.NRGBA
func (s Style) FillNRGBA() color.NRGBA {
	return toNRGBA(s.Fill)
}

// TextNRGBA returns the text colour as a color.NRGBA
func (s Style) TextNRGBA() color.NRGBA {
	return toNRGBA(s.TextColor)
}

func toNRGBA(c drawing.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// named colours accepted in stylesheets besides hex notation
var namedColors = map[string]drawing.Color{
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"green":       {R: 0, G: 128, B: 0, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"lightgray":   {R: 211, G: 211, B: 211, A: 255},
	"transparent": {R: 255, G: 255, B: 255, A: 0},
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a named colour
func ParseColor(s string) (drawing.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if hex == s || !isHex(hex) {
		return drawing.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}

	switch len(hex) {
	case 3:
		return drawing.ColorFromHex(string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})), nil
	case 6:
		return drawing.ColorFromHex(hex), nil
	case 8:
		alpha, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return drawing.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
		}
		return drawing.ColorFromHex(hex[:6]).WithAlpha(uint8(alpha)), nil
	default:
		return drawing.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
}

// MustParseColor is like ParseColor but panics on error
func MustParseColor(s string) drawing.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
