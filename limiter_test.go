package deepnote

import (
	"math"
	"math/rand"
	"testing"
)

func TestLimiter_unityForQuietSignals(t *testing.T) {
	l := NewLimiter(1, .01, .5)
	Init(l, Params{SampleRate: 8000})
	for i := 0; i < 8000; i++ {
		l.Process(1e-3 * math.Sin(float64(i)))
	}
	if g := l.Gain(); g < .98 || g > 1 {
		t.Errorf("expected about unity gain, got %v", g)
	}
}

func TestLimiter_recovers(t *testing.T) {
	l := NewLimiter(.3, .01, .5)
	Init(l, Params{SampleRate: 8000})
	for i := 0; i < 8000; i++ {
		l.Process(2 * math.Sin(float64(i)))
	}
	if g := l.Gain(); g > .5 {
		t.Errorf("expected a loud signal to be turned down, got gain %v", g)
	}
	for i := 0; i < 8*8000; i++ {
		l.Process(0)
	}
	if g := l.Gain(); g != 1 {
		t.Errorf("expected the gain to recover to unity, got %v", g)
	}
}

func TestDelayLine(t *testing.T) {
	d := NewDelayLine(.003)
	Init(d, Params{SampleRate: 1000})
	if d.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", d.Len())
	}
	for i, want := range []float64{0, 0, 0, 1, 2, 3, 4} {
		if y := d.Shift(float64(i + 1)); y != want {
			t.Errorf("shift %d: expected %v, got %v", i, want, y)
		}
	}
}

func BenchmarkLimiter(b *testing.B) {
	x := make([]float64, 1024)
	for i := range x {
		x[i] = 8*rand.Float64() - 4
	}
	l := NewLimiter(.3, .01, .5)
	Init(l, Params{SampleRate: 96000})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Process(x[i&(1<<10-1)])
	}
}
