package model

import (
	"math"
	"testing"
)

func TestDataset_StartEnd(t *testing.T) {
	d := NewDataset(Pt(50, 50), Pt(400, 200))

	if d.Start() != Pt(50, 50) {
		t.Errorf("Expected start (50, 50), got %s", d.Start())
	}
	if d.End() != Pt(400, 200) {
		t.Errorf("Expected end (400, 200), got %s", d.End())
	}

	// Copies must not share storage
	c := d
	c[0] = Pt(0, 0)
	if d.Start() != Pt(50, 50) {
		t.Errorf("Dataset copy mutated the original: %s", d.Start())
	}
}

func TestSegment_DistanceTo(t *testing.T) {
	seg := Segment{From: Pt(0, 0), To: Pt(10, 0)}

	tests := []struct {
		name     string
		p        Point
		expected float64
	}{
		{"on segment", Pt(5, 0), 0},
		{"above middle", Pt(5, 3), 3},
		{"before start", Pt(-3, 4), 5},
		{"after end", Pt(13, 4), 5},
	}

	for _, test := range tests {
		got := seg.DistanceTo(test.p)
		if math.Abs(got-test.expected) > 1e-9 {
			t.Errorf("%s: DistanceTo(%s) = %v, expected %v", test.name, test.p, got, test.expected)
		}
	}
}

func TestSegment_DegenerateDistance(t *testing.T) {
	seg := Segment{From: Pt(1, 1), To: Pt(1, 1)}
	if got := seg.DistanceTo(Pt(4, 5)); got != 5 {
		t.Errorf("Expected distance 5 to a point segment, got %v", got)
	}
}

func TestMargin(t *testing.T) {
	m := Margin{Top: 20, Right: 30, Bottom: 30, Left: 50}

	if m.Horizontal() != 80 {
		t.Errorf("Expected horizontal 80, got %v", m.Horizontal())
	}
	if m.Vertical() != 50 {
		t.Errorf("Expected vertical 50, got %v", m.Vertical())
	}
	if m.Origin() != Pt(50, 20) {
		t.Errorf("Expected origin (50, 20), got %s", m.Origin())
	}
}

func TestTickSet_IsImmutable(t *testing.T) {
	src := []float64{0, 100, 200}
	ticks := NewTickSet(src...)

	src[0] = 42
	if got := ticks.Values(); got[0] != 0 {
		t.Errorf("TickSet shares storage with its input: %v", got)
	}

	values := ticks.Values()
	values[1] = 42
	if got := ticks.Values(); got[1] != 100 {
		t.Errorf("Values() leaked internal storage: %v", got)
	}

	if !ticks.Contains(200) || ticks.Contains(300) {
		t.Error("Contains returned unexpected result")
	}
	if ticks.Len() != 3 {
		t.Errorf("Expected 3 ticks, got %d", ticks.Len())
	}
}
