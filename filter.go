package deepnote

import "math"

// DCFilter removes the DC offset below about 10 Hz.
type DCFilter struct {
	a, x, y float64
}

func (f *DCFilter) InitAudio(p Params) {
	rc := 1 / (2 * math.Pi * 10)
	f.a = rc / (rc + 1/float64(p.SampleRate))
	f.x, f.y = 0, 0
}

func (f *DCFilter) Filter(x float64) float64 {
	f.y = f.a * (f.y + x - f.x)
	f.x = x
	return f.y
}

// LowPass1 is a one-pole low-pass filter.  A cutoff of 0 leaves the signal
// untouched.
type LowPass1 struct {
	Params Params
	freq   float64
	a, y   float64
}

func (f *LowPass1) InitAudio(p Params) {
	f.Params = p
	f.Freq(f.freq)
}

func (f *LowPass1) Freq(freq float64) *LowPass1 {
	f.freq = freq
	f.a = 1
	if freq > 0 && f.Params.SampleRate > 0 {
		f.a = 1 - math.Exp(-2*math.Pi*freq/float64(f.Params.SampleRate))
	}
	return f
}

func (f *LowPass1) Filter(x float64) float64 {
	f.y += f.a * (x - f.y)
	return f.y
}
