package deepnote

import (
	"math"
	"testing"
)

func TestReverb_tail(t *testing.T) {
	r := NewReverb(.2, .3, 1, 1)
	Init(r, Params{SampleRate: 8000})

	r.Process(1)
	energy := 0.0
	for i := 0; i < 8000; i++ {
		y := r.Process(0)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("sample %d: %v", i, y)
		}
		energy += y * y
	}
	if energy == 0 {
		t.Error("expected an impulse to leave a tail")
	}

	quiet := 0.0
	for i := 0; i < 4*8000; i++ {
		y := r.Process(0)
		if i >= 3*8000 {
			quiet += y * y
		}
	}
	if quiet > energy/100 {
		t.Errorf("expected the tail to decay: first second %g, fourth second %g", energy, quiet)
	}
}

func TestReverb_dry(t *testing.T) {
	r := NewReverb(.2, 4, 0, 1)
	Init(r, Params{SampleRate: 8000})
	for _, x := range []float64{1, -.5, .25, 0} {
		if y := r.Process(x); y != x {
			t.Errorf("expected %v, got %v", x, y)
		}
	}
}

func BenchmarkReverb(b *testing.B) {
	r := NewReverb(.2, 4, .3, 1)
	Init(r, Params{SampleRate: 48000})
	for i := 0; i < b.N; i++ {
		r.Process(.1)
	}
}
