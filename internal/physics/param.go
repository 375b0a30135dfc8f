// Package physics holds the closed-form drilling calculators behind the lab
// visualizers. Every calculator is a pure function of its control values.
package physics

import "math"

var unitRange = Range{Min: 0, Max: 1}

// Range is the closed interval a control parameter may take.
type Range struct {
	Min float64
	Max float64
}

// Clamp pins v into the range. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Fraction maps v onto [0, 1] across the range.
func (r Range) Fraction(v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (r.Clamp(v) - r.Min) / (r.Max - r.Min)
}

// Param describes one adjustable control: its label, unit, valid range and
// the increment applied per key press in the lab.
type Param struct {
	Key   string
	Label string
	Unit  string
	Range Range
	Step  float64
}

// Nudge moves v by n steps and clamps the result.
func (p Param) Nudge(v float64, n int) float64 {
	return p.Range.Clamp(v + float64(n)*p.Step)
}
