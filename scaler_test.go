package deepnote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaler(t *testing.T) {
	tests := []struct {
		name    string
		in, out Range
		x, want float32
	}{
		{"identity low", NewRange(0, 10), NewRange(0, 10), 0, 0},
		{"identity high", NewRange(0, 10), NewRange(0, 10), 10, 10},
		{"centered", UnitRange, NewRange(-5, 5), 0.5, 0},
		{"unit to sweep", UnitRange, NewRange(400, 20000), 1, 20000},
		{"reversed output", UnitRange, NewRange(800, 200), 0, 200},
		{"extrapolates", UnitRange, NewRange(0, 100), 1.5, 150},
		{"shifted input", NewRange(-1, 1), UnitRange, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NewScaler(tt.in, tt.out).Scale(tt.x), 1e-4)
		})
	}
}
