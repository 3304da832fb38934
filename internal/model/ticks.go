package model

// TickSet is a fixed, hand-enumerated list of tick positions
type TickSet struct {
	values []float64
}

// NewTickSet copies values into a new tick set
func NewTickSet(values ...float64) TickSet {
	v := make([]float64, len(values))
	copy(v, values)
	return TickSet{values: v}
}

// Len returns the number of ticks
func (t TickSet) Len() int {
	return len(t.values)
}

// Values returns a copy of the tick positions
func (t TickSet) Values() []float64 {
	v := make([]float64, len(t.values))
	copy(v, t.values)
	return v
}

// Contains reports whether v is one of the tick positions
func (t TickSet) Contains(v float64) bool {
	for _, tv := range t.values {
		if tv == v {
			return true
		}
	}
	return false
}
