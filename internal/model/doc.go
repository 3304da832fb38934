// Package model defines the chart's data-space value types: points, the fixed
// two-point dataset, literal pixel segments, plot margins and tick sets. All
// values are created once and never mutated after construction.
package model
