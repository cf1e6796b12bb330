package deepnote

import "github.com/chewxy/math32"

// A Range is a closed interval [Low, High].  The zero Range is [0, 0].
type Range struct {
	low, high float32
}

// UnitRange is [0, 1].
var UnitRange = Range{0, 1}

// NewRange returns the interval between a and b.  Reversed bounds are
// swapped, not rejected.
func NewRange(a, b float32) Range {
	if b < a {
		a, b = b, a
	}
	return Range{a, b}
}

func (r Range) Low() float32  { return r.low }
func (r Range) High() float32 { return r.high }

func (r Range) Length() float32 { return r.high - r.low }

func (r Range) Contains(x float32) bool {
	return x >= r.low && x <= r.high
}

// Expand returns r widened by d at both ends.
func (r Range) Expand(d float32) Range {
	return NewRange(r.low-d, r.high+d)
}

// Constrain clamps x into r.  NaN maps to Low so that a degenerate value
// never leaves the interval.
func (r Range) Constrain(x float32) float32 {
	if math32.IsNaN(x) {
		return r.low
	}
	return math32.Max(r.low, math32.Min(r.high, x))
}
