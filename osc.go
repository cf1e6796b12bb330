package deepnote

import "math"

// SawOsc is a band-limited (PolyBLEP) sawtooth in [-1, 1].
//
// Phase is accumulated in float64.
type SawOsc struct {
	Params Params
	freq   float64
	phase  float64
	d      float64
}

func (o *SawOsc) InitAudio(p Params) {
	o.Params = p
	o.SetFreq(Frequency(o.freq))
}

func (o *SawOsc) SetFreq(freq Frequency) {
	o.freq = float64(freq)
	o.d = 0
	if o.Params.SampleRate > 0 {
		o.d = o.freq / float64(o.Params.SampleRate)
	}
}

func (o *SawOsc) Reset() { o.phase = 0 }

func (o *SawOsc) Saw() float32 {
	y := 2*o.phase - 1 - polyBLEP(o.phase, math.Abs(o.d))
	o.phase = wrap(o.phase + o.d)
	return float32(y)
}

// polyBLEP is the two-sample polynomial correction for a unit step at
// phase 0, where dt is the phase increment per sample.
func polyBLEP(t, dt float64) float64 {
	if !(dt > 0 && dt < 1) {
		return 0
	}
	switch {
	case t < dt:
		t /= dt
		return t + t - t*t - 1
	case t > 1-dt:
		t = (t - 1) / dt
		return t*t + t + t + 1
	}
	return 0
}

// wrap reduces a phase to [0, 1).
func wrap(phase float64) float64 {
	if phase >= 0 && phase < 1 {
		return phase
	}
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return 0
	}
	return phase - math.Floor(phase)
}

// RampOsc is a naive rising ramp in [-Amp, Amp).  Unlike SawOsc it is not
// band-limited; it is meant for control signals.
type RampOsc struct {
	Params Params
	Amp    float32
	freq   float64
	phase  float64
	d      float64
}

func (o *RampOsc) InitAudio(p Params) {
	o.Params = p
	o.SetFreq(Frequency(o.freq))
}

func (o *RampOsc) SetFreq(freq Frequency) {
	o.freq = float64(freq)
	o.d = 0
	if o.Params.SampleRate > 0 && o.freq > 0 {
		o.d = o.freq / float64(o.Params.SampleRate)
	}
}

func (o *RampOsc) Reset() { o.phase = 0 }

// Ramp returns the current value and advances one sample.  cycled reports
// whether the advance completed a cycle, i.e. the returned value was the
// last one before the ramp falls back to -Amp.
func (o *RampOsc) Ramp() (y float32, cycled bool) {
	y = o.Amp * float32(2*o.phase-1)
	next := o.phase + o.d
	cycled = next >= 1
	o.phase = wrap(next)
	return y, cycled
}
