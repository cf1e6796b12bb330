// Package analysis measures rendered audio: its spectrum, the frequency
// that dominates it, and its level.
package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/go-audio/audio"
	"github.com/ktye/fft"
)

var ErrTooShort = errors.New("analysis: need at least two samples")

// A Spectrum is the magnitude spectrum of a Hann-windowed block.
type Spectrum struct {
	SampleRate float64
	Size       int
	Magnitudes []float64 // bins 0 to Size/2
}

// NewSpectrum analyzes the last power-of-two-sized run of x.
func NewSpectrum(x []float32, sampleRate float64) (*Spectrum, error) {
	n := 1
	for n*2 <= len(x) {
		n *= 2
	}
	if n < 2 {
		return nil, ErrTooShort
	}
	x = x[len(x)-n:]

	buf := make([]complex128, n)
	for i, v := range x {
		env := (1 - math.Cos(2*math.Pi*float64(i)/float64(n))) / 2
		buf[i] = complex(float64(v)*env, 0)
	}
	f, err := fft.New(n)
	if err != nil {
		return nil, err
	}
	buf = f.Transform(buf)

	mag := make([]float64, n/2+1)
	for i := range mag {
		mag[i] = cmplx.Abs(buf[i])
	}
	return &Spectrum{SampleRate: sampleRate, Size: n, Magnitudes: mag}, nil
}

// BinFrequency returns the center frequency of bin i.
func (s *Spectrum) BinFrequency(i int) float64 {
	return float64(i) * s.SampleRate / float64(s.Size)
}

func (s *Spectrum) bin(freq float64) int {
	i := int(math.Round(freq * float64(s.Size) / s.SampleRate))
	if i < 0 {
		return 0
	}
	if i >= len(s.Magnitudes) {
		return len(s.Magnitudes) - 1
	}
	return i
}

// Peak returns the frequency of the strongest component between lo and hi
// Hz, refined between bins by fitting a parabola to the log magnitudes.
func (s *Spectrum) Peak(lo, hi float64) float64 {
	a, b := s.bin(lo), s.bin(hi)
	if a < 1 {
		a = 1
	}
	best := a
	for i := a; i <= b; i++ {
		if s.Magnitudes[i] > s.Magnitudes[best] {
			best = i
		}
	}
	if best <= 0 || best >= len(s.Magnitudes)-1 {
		return s.BinFrequency(best)
	}
	l := math.Log(s.Magnitudes[best-1] + 1e-12)
	c := math.Log(s.Magnitudes[best] + 1e-12)
	r := math.Log(s.Magnitudes[best+1] + 1e-12)
	offset := 0.0
	if d := l - 2*c + r; d != 0 {
		offset = (l - r) / (2 * d)
	}
	return (float64(best) + offset) * s.SampleRate / float64(s.Size)
}

// DominantFrequency returns the strongest component of buf below Nyquist.
func DominantFrequency(buf *audio.Float32Buffer) (float64, error) {
	rate := float64(buf.Format.SampleRate)
	s, err := NewSpectrum(buf.Data, rate)
	if err != nil {
		return 0, err
	}
	return s.Peak(1, rate/2), nil
}
