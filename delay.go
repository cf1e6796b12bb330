package deepnote

import "math"

// A DelayLine holds back a signal by a whole number of samples, at least
// one.
type DelayLine struct {
	Seconds float64

	ring []float64
	pos  int
}

func NewDelayLine(seconds float64) *DelayLine {
	return &DelayLine{Seconds: seconds}
}

func (d *DelayLine) InitAudio(p Params) {
	n := int(math.Round(d.Seconds * float64(p.SampleRate)))
	d.ring = make([]float64, max(n, 1))
	d.pos = 0
}

// Len returns the delay in samples.
func (d *DelayLine) Len() int { return len(d.ring) }

// Shift pushes x in and returns the sample pushed Len() calls ago.
func (d *DelayLine) Shift(x float64) float64 {
	y := d.ring[d.pos]
	d.ring[d.pos] = x
	if d.pos++; d.pos == len(d.ring) {
		d.pos = 0
	}
	return y
}
