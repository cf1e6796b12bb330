package deepnote

// A UnitShaper reshapes a ramp over [0, 1] into a curve that starts at 0
// and ends at 1.
type UnitShaper interface {
	Shape(t float32) float32
}

// LinearShaper leaves the ramp untouched.
type LinearShaper struct{}

func (LinearShaper) Shape(t float32) float32 { return t }

// BezierShaper is the cubic Bezier curve with end points (0,0) and (1,1)
// and free interior ordinates Y2 and Y3.  Ordinates outside [0, 1] give
// overshoot or undershoot between the end points; the end points
// themselves are exact for every Y2 and Y3.
type BezierShaper struct {
	Y2, Y3 float32
}

func NewBezierShaper(c1 ControlPoint1, c2 ControlPoint2) BezierShaper {
	return BezierShaper{float32(c1), float32(c2)}
}

func (b BezierShaper) Shape(t float32) float32 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	u := 1 - t
	return 3*u*u*t*b.Y2 + 3*u*t*t*b.Y3 + t*t*t
}
