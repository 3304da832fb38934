package model

import "fmt"

// Point is a pair of coordinates, in data space or pixel space depending on use
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String returns the point as "(x, y)"
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Dataset is an ordered pair of points defining one line segment.
// It is an array so copies never share storage with the original.
type Dataset [2]Point

// NewDataset creates a dataset from its start and end points
func NewDataset(start, end Point) Dataset {
	return Dataset{start, end}
}

// Start returns the first point
func (d Dataset) Start() Point {
	return d[0]
}

// End returns the second point
func (d Dataset) End() Point {
	return d[1]
}

// Segment is a straight segment with endpoints already in pixel space
type Segment struct {
	From Point
	To   Point
}

// DistanceTo returns the shortest distance from p to any point of the segment
func (s Segment) DistanceTo(p Point) float64 {
	dx := s.To.X - s.From.X
	dy := s.To.Y - s.From.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return distance(s.From, p)
	}

	// Project p onto the segment and clamp to the endpoints
	t := ((p.X-s.From.X)*dx + (p.Y-s.From.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return distance(Point{X: s.From.X + t*dx, Y: s.From.Y + t*dy}, p)
}
