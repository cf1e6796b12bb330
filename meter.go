package deepnote

import "math"

// RMS measures the root-mean-square amplitude over a sliding window of
// squared samples.
type RMS struct {
	Window float64 // seconds

	squares []float64
	i       int
	sum     float64
}

func NewRMS(window float64) *RMS {
	return &RMS{Window: window}
}

func (a *RMS) InitAudio(p Params) {
	n := int(float64(p.SampleRate) * a.Window)
	a.squares = make([]float64, max(n, 1))
	a.i = 0
	a.sum = 0
}

func (a *RMS) Add(x float64) {
	a.sum += x*x - a.squares[a.i]
	a.squares[a.i] = x * x
	if a.i++; a.i == len(a.squares) {
		a.i = 0
		// Resum each window so a silent window reads exactly 0.
		a.sum = 0
		for _, s := range a.squares {
			a.sum += s
		}
	}
}

func (a *RMS) Amplitude() float64 {
	if a.sum <= 0 {
		return 0
	}
	return math.Sqrt(a.sum / float64(len(a.squares)))
}
