package deepnote

import "sync/atomic"

// Master is the output stage between an Ensemble (or Score) and the audio
// device: volume, a Fade, DC removal, a tone low-pass, an optional
// Reverb and a soft limiter, in that order.
//
// Initialize it with Init, which reaches every exported stage.  Release
// may be called from any goroutine; Process must be called from the audio
// goroutine.
type Master struct {
	Params  Params
	DC      DCFilter
	Tone    LowPass1
	Reverb  *Reverb // nil for none
	Fade    *Fade
	Limiter *Limiter

	src     Processor
	volume  float64
	release atomic.Bool
	done    atomic.Bool
}

// NewMaster wraps src.  cutoff is the tone filter's cutoff in Hz (0 for
// none); limit is the RMS level the limiter holds the output to.
func NewMaster(src Processor, volume, cutoff, limit float64) *Master {
	m := &Master{
		src:     src,
		volume:  volume,
		Fade:    NewFade(.05, .5),
		Limiter: NewLimiter(limit, .01, .5),
	}
	m.Tone.Freq(cutoff)
	return m
}

// Release fades the output out.  Done reports when the fade has finished.
func (m *Master) Release()   { m.release.Store(true) }
func (m *Master) Done() bool { return m.done.Load() }

func (m *Master) Process(out []float32) {
	m.src.Process(out)
	if m.release.Load() {
		m.Fade.Release()
	}
	for i, x := range out {
		y := float64(x) * m.volume * m.Fade.Next()
		y = m.DC.Filter(y)
		y = m.Tone.Filter(y)
		if m.Reverb != nil {
			y = m.Reverb.Process(y)
		}
		out[i] = float32(m.Limiter.Process(y))
	}
	if m.Fade.Silent() {
		m.done.Store(true)
	}
}
