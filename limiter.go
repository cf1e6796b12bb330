package deepnote

import "math"

// Limiter is a look-ahead soft limiter.  It steers its gain so that the RMS
// level of the output, measured over the attack time, settles at Target
// through a tanh knee; peaks may still exceed Target.
//
// The gain is tracked in octaves and never rises above unity.
type Limiter struct {
	Target          float64
	Attack, Release float64 // seconds

	octaves   float64
	down, up  float64
	level     *RMS
	lookahead *DelayLine
}

func NewLimiter(target, attack, release float64) *Limiter {
	return &Limiter{
		Target:    target,
		Attack:    attack,
		Release:   release,
		level:     NewRMS(attack),
		lookahead: NewDelayLine(attack),
	}
}

func (l *Limiter) InitAudio(p Params) {
	rate := float64(p.SampleRate)
	l.down = 1 / (l.Attack * rate)
	l.up = 1 / (l.Release * rate)
	l.octaves = 0
	l.level.InitAudio(p)
	l.lookahead.InitAudio(p)
}

// Gain returns the current linear gain.
func (l *Limiter) Gain() float64 { return math.Exp2(l.octaves) }

func (l *Limiter) Process(x float64) float64 {
	gain := l.Gain()
	l.level.Add(x)
	over := l.level.Amplitude() / l.Target
	switch {
	case over > 0 && math.Tanh(over)/over < gain:
		l.octaves -= l.down
	case l.octaves < 0:
		l.octaves = math.Min(0, l.octaves+l.up)
	}
	return gain * l.lookahead.Shift(x)
}
