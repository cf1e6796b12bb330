package deepnote

import (
	"math"
	"testing"
)

func TestSawOsc_range(t *testing.T) {
	var o SawOsc
	Init(&o, Params{SampleRate: 48000})
	for _, freq := range []Frequency{0, 1, 440, 12000, 30000, -440} {
		o.SetFreq(freq)
		for i := 0; i < 4800; i++ {
			y := o.Saw()
			if math.IsNaN(float64(y)) || math.Abs(float64(y)) > 1.5 {
				t.Fatalf("freq=%v: sample %d = %v", freq, i, y)
			}
		}
	}
}

func TestSawOsc_zeroMean(t *testing.T) {
	var o SawOsc
	Init(&o, Params{SampleRate: 48000})
	o.SetFreq(480)
	sum := 0.0
	for i := 0; i < 48000; i++ {
		sum += float64(o.Saw())
	}
	if mean := sum / 48000; math.Abs(mean) > .01 {
		t.Errorf("expected zero mean, got %.4f", mean)
	}
}

func TestRampOsc_cycle(t *testing.T) {
	o := RampOsc{Amp: .5}
	Init(&o, Params{SampleRate: 8})
	o.SetFreq(1)
	for i := 0; i < 8; i++ {
		y, cycled := o.Ramp()
		if want := float32(i)/8 - .5; math.Abs(float64(y-want)) > 1e-6 {
			t.Errorf("sample %d: expected %v, got %v", i, want, y)
		}
		if cycled != (i == 7) {
			t.Errorf("sample %d: cycled=%v", i, cycled)
		}
	}
	if y, _ := o.Ramp(); y != -.5 {
		t.Errorf("expected ramp to restart at -.5, got %v", y)
	}
}

func TestRampOsc_stopped(t *testing.T) {
	o := RampOsc{Amp: .5}
	Init(&o, Params{SampleRate: 48000})
	o.SetFreq(-3)
	for i := 0; i < 10; i++ {
		if y, cycled := o.Ramp(); y != -.5 || cycled {
			t.Fatalf("expected a stopped ramp, got %v, %v", y, cycled)
		}
	}
}

func BenchmarkSawOsc(b *testing.B) {
	o := new(SawOsc)
	Init(o, Params{SampleRate: 96000})
	for i := 0; i < b.N; i++ {
		o.SetFreq(1234)
		o.Saw()
	}
}
