package deepnote

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRangeSwapsReversedBounds(t *testing.T) {
	r := NewRange(10, -5)
	require.Equal(t, float32(-5), r.Low())
	require.Equal(t, float32(10), r.High())
	require.Equal(t, float32(15), r.Length())

	assert.Equal(t, NewRange(-5, 10), r)
	assert.Equal(t, float32(0), NewRange(3, 3).Length())
}

func TestRangeContains(t *testing.T) {
	r := NewRange(200, 400)
	for x, want := range map[float32]bool{
		199.99: false,
		200:    true,
		300:    true,
		400:    true,
		400.01: false,
	} {
		assert.Equal(t, want, r.Contains(x), "Contains(%v)", x)
	}
	assert.False(t, r.Contains(math32.NaN()))
}

func TestRangeConstrain(t *testing.T) {
	r := NewRange(-1, 1)
	assert.Equal(t, float32(-1), r.Constrain(-7))
	assert.Equal(t, float32(0.25), r.Constrain(0.25))
	assert.Equal(t, float32(1), r.Constrain(math32.Inf(1)))
	assert.Equal(t, float32(-1), r.Constrain(math32.NaN()))
}

func TestRangeExpand(t *testing.T) {
	r := NewRange(100, 200).Expand(1)
	assert.Equal(t, float32(99), r.Low())
	assert.Equal(t, float32(201), r.High())
}
