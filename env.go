package deepnote

import "math"

// silence is the level below which a released Fade counts as finished.
const silence = 1e-4

// Fade is the master gate.  It rises exponentially from silence when the
// stream starts and falls exponentially after Release, each covering 40 dB
// in its given number of seconds.
type Fade struct {
	Params  Params
	In, Out float64

	rise, fall float64
	level      float64
	releasing  bool
}

func NewFade(in, out float64) *Fade {
	return &Fade{In: in, Out: out}
}

func (f *Fade) InitAudio(p Params) {
	f.Params = p
	f.rise = fortyDBCoefficient(f.In, p.SampleRate)
	f.fall = fortyDBCoefficient(f.Out, p.SampleRate)
	f.level = 0
	f.releasing = false
}

// fortyDBCoefficient is the per-sample factor that shrinks a value by 40 dB
// in seconds.  A non-positive time gives an instant change.
func fortyDBCoefficient(seconds float64, rate SampleRate) float64 {
	if !(seconds > 0) || !(rate > 0) {
		return 0
	}
	return math.Pow(.01, 1/(seconds*float64(rate)))
}

func (f *Fade) Release()        { f.releasing = true }
func (f *Fade) Releasing() bool { return f.releasing }

// Next advances one sample and returns the gate level in [0, 1].
func (f *Fade) Next() float64 {
	if f.releasing {
		f.level *= f.fall
	} else {
		f.level = 1 - (1-f.level)*f.rise
	}
	return f.level
}

// Silent reports whether a released Fade has faded out.
func (f *Fade) Silent() bool {
	return f.releasing && f.level < silence
}
