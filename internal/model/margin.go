package model

import "math"

// Margin holds fixed insets separating the plot area from the outer surface
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Horizontal returns Left + Right
func (m Margin) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns Top + Bottom
func (m Margin) Vertical() float64 {
	return m.Top + m.Bottom
}

// Origin returns the top-left corner of the plot area in surface coordinates
func (m Margin) Origin() Point {
	return Point{X: m.Left, Y: m.Top}
}

func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
