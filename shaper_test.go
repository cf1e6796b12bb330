package deepnote

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBezierShaperEndpoints(t *testing.T) {
	ordinates := []float32{
		0, 1, 0.08, 0.5, -1, 2, -1000, 1000,
		math32.NaN(), math32.Inf(1), math32.Inf(-1),
	}
	for _, y2 := range ordinates {
		for _, y3 := range ordinates {
			b := BezierShaper{y2, y3}
			require.Equal(t, float32(0), b.Shape(0), "Shape(0) with (%v, %v)", y2, y3)
			require.Equal(t, float32(1), b.Shape(1), "Shape(1) with (%v, %v)", y2, y3)
		}
	}
}

func TestBezierShaperClampsOutsideUnitInterval(t *testing.T) {
	b := BezierShaper{0.3, 0.7}
	assert.Equal(t, float32(0), b.Shape(-0.5))
	assert.Equal(t, float32(1), b.Shape(3))
}

func TestBezierShaperCurve(t *testing.T) {
	// (0, 1) is symmetric about t = 0.5.
	assert.InDelta(t, 0.5, BezierShaper{0, 1}.Shape(0.5), 1e-6)
	// (1/3, 2/3) reproduces the straight line.
	linear := BezierShaper{1. / 3, 2. / 3}
	for _, x := range []float32{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, x, linear.Shape(x), 1e-6)
	}
	// A low first ordinate eases in.
	assert.Less(t, BezierShaper{0.08, 0.5}.Shape(0.25), float32(0.25))
}

func TestBezierShaperMonotonicForUnitOrdinates(t *testing.T) {
	b := NewBezierShaper(0.08, 0.5)
	prev := float32(0)
	for i := 1; i <= 1000; i++ {
		y := b.Shape(float32(i) / 1000)
		require.GreaterOrEqual(t, y, prev, "at %d", i)
		prev = y
	}
}

func TestBezierShaperOvershoots(t *testing.T) {
	b := BezierShaper{-1, 2}
	assert.Less(t, b.Shape(0.1), float32(0))
	assert.Greater(t, b.Shape(0.9), float32(1))
}

func TestLinearShaper(t *testing.T) {
	var s UnitShaper = LinearShaper{}
	for _, x := range []float32{0, 0.3, 1} {
		assert.Equal(t, x, s.Shape(x))
	}
}
