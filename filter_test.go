package deepnote

import (
	"math"
	"testing"
)

func TestLowPass1_zeroCutoffPasses(t *testing.T) {
	f := new(LowPass1).Freq(0)
	Init(f, Params{SampleRate: 48000})
	for _, x := range []float64{1, -3, .5} {
		if y := f.Filter(x); y != x {
			t.Errorf("expected %v, got %v", x, y)
		}
	}
}

func TestDCFilter(t *testing.T) {
	var f DCFilter
	Init(&f, Params{SampleRate: 48000})
	y := 0.0
	for i := 0; i < 48000; i++ {
		y = f.Filter(1)
	}
	if math.Abs(y) > 1e-6 {
		t.Errorf("expected DC to be removed, got %v", y)
	}
}

func BenchmarkLowPass1(b *testing.B) {
	f := new(LowPass1).Freq(1234)
	Init(&f, Params{SampleRate: 96000})
	x := 1.0
	for i := 0; i < b.N; i++ {
		x = f.Filter(x)
	}
}
