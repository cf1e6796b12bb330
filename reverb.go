package deepnote

import (
	"math"
	"math/rand"
	"time"
)

// reverbStreams is the number of grain streams in a Reverb, each feeding
// the next.
const reverbStreams = 10

// Reverb is a granular hall: a chain of delay lines, each read through two
// randomly placed, crossfaded taps that hop every grain.  It has no fixed
// echo pattern, so the dense Deep Note cluster smears into a room rather
// than ringing at comb frequencies.
type Reverb struct {
	Params Params

	// Size is the mean grain length in seconds; Decay is the time for the
	// tail to fall by 40 dB; Mix is the wet share of the output in [0, 1].
	Size, Decay, Mix float64

	streams [reverbStreams]grainStream
	seed    int64
	rand    *rand.Rand
}

type grainStream struct {
	buf    []float64
	i      int
	t, dt  float64
	a1, a2 float64
	i1, i2 int
	dc     DCFilter
}

// NewReverb returns a Reverb seeded with seed, or with the current time if
// seed is 0.
func NewReverb(size, decay, mix float64, seed int64) *Reverb {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Reverb{Size: size, Decay: decay, Mix: mix, seed: seed}
}

// InitAudio allocates one second of delay per stream.
func (r *Reverb) InitAudio(p Params) {
	r.Params = p
	n := int(p.SampleRate)
	if n < 1 {
		n = 1
	}
	for i := range r.streams {
		s := &r.streams[i]
		*s = grainStream{buf: make([]float64, n), t: 1}
		s.dc.InitAudio(p)
	}
	r.rand = rand.New(rand.NewSource(r.seed))
}

func (r *Reverb) Process(dry float64) float64 {
	rate := float64(r.Params.SampleRate)
	wet := 0.0
	x := dry
	for i := range r.streams {
		s := &r.streams[i]
		if s.t >= 1 {
			s.t -= 1
			s.a1, s.i1 = s.a2, s.i2
			delay := math.Exp2(r.rand.Float64() - 2.5)
			s.dt = 1 / math.Exp2(r.rand.Float64()) / r.Size / rate
			s.a2 = math.Pow(.01, delay/r.Decay)
			s.i2 = (s.i - int(delay*rate) + 2*len(s.buf)) % len(s.buf)
		}
		fade := math.Sin(math.Pi / 2 * s.t)
		fade *= fade
		y := s.dc.Filter(s.a1*(1-fade)*s.buf[s.i1] + s.a2*fade*s.buf[s.i2])
		s.i1 = (s.i1 + 1) % len(s.buf)
		s.i2 = (s.i2 + 1) % len(s.buf)
		s.t += s.dt
		s.buf[s.i] = x + y
		s.i = (s.i + 1) % len(s.buf)
		x = y
		wet += y
	}
	return (1-r.Mix)*dry + r.Mix*wet
}
