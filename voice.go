package deepnote

import (
	"fmt"

	"github.com/chewxy/math32"
)

// State is the position of a Voice in its sweep.
type State int

const (
	// PendingTransitToTarget: a target was just set; the sweep starts on the
	// next Process.
	PendingTransitToTarget State = iota
	// InTransitToTarget: sweeping.
	InTransitToTarget
	// AtTarget: converged and holding until the next target.
	AtTarget
)

func (s State) String() string {
	switch s {
	case PendingTransitToTarget:
		return "PendingTransitToTarget"
	case InTransitToTarget:
		return "InTransitToTarget"
	case AtTarget:
		return "AtTarget"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// A Voice is a bank of detuned sawtooth oscillators whose fundamental
// glides from a start frequency to a target frequency along a Bezier curve,
// one cycle of its animation LFO long.
//
// A Voice belongs to one goroutine.  Ensemble is the way to drive voices
// from a separate control goroutine.
type Voice struct {
	state   State
	start   Frequency
	target  Frequency
	current Frequency

	bank    OscillatorBank
	detune  DetuneHz
	lfoBase Frequency
	lfo     AnimationLFO
}

type voiceOptions struct {
	detune DetuneHz
}

// A VoiceOption configures Voice.Init.
type VoiceOption func(*voiceOptions)

// WithDetune sets the oscillator spacing (default DefaultDetuneHz).
func WithDetune(d DetuneHz) VoiceOption {
	return func(o *voiceOptions) { o.detune = d }
}

// Init configures v with n oscillators holding at start.  lfo is the base
// rate of the animation LFO; a sweep takes one LFO cycle at multiplier 1.
func (v *Voice) Init(n int, start Frequency, rate SampleRate, lfo Frequency, opts ...VoiceOption) error {
	o := voiceOptions{detune: DefaultDetuneHz}
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkFrequency("start frequency", start); err != nil {
		return err
	}
	if !(rate > 0) || math32.IsInf(float32(rate), 0) {
		return invalidf("sample rate must be positive and finite, got %v", rate)
	}
	if err := checkFrequency("LFO frequency", lfo); err != nil {
		return err
	}
	if err := checkDetune(o.detune); err != nil {
		return err
	}
	var bank OscillatorBank
	if err := bank.SetCount(n); err != nil {
		return err
	}

	*v = Voice{
		state:   AtTarget,
		start:   start,
		target:  start,
		current: start,
		bank:    bank,
		lfoBase: lfo,
	}
	p := Params{SampleRate: rate}
	Init(&v.bank, p)
	Init(&v.lfo, p)
	v.setDetune(o.detune)
	return nil
}

// SetTargetFrequency starts a new sweep from wherever the voice currently
// is, so retargeting mid-sweep does not jump.
func (v *Voice) SetTargetFrequency(f Frequency) error {
	if err := checkFrequency("target frequency", f); err != nil {
		return err
	}
	v.setTarget(f)
	return nil
}

func (v *Voice) setTarget(f Frequency) {
	v.start = v.current
	v.target = f
	v.state = PendingTransitToTarget
}

// SetStartFrequency jumps to f and sweeps from there to the current target.
func (v *Voice) SetStartFrequency(f Frequency) error {
	if err := checkFrequency("start frequency", f); err != nil {
		return err
	}
	v.setStart(f)
	return nil
}

func (v *Voice) setStart(f Frequency) {
	v.start = f
	v.current = f
	v.state = PendingTransitToTarget
}

// DetuneOscillators respaces the oscillators around the fundamental; see
// OscillatorBank.Detune.  Negative d mirrors the spread.
func (v *Voice) DetuneOscillators(d DetuneHz) error {
	if err := checkDetune(d); err != nil {
		return err
	}
	v.setDetune(d)
	return nil
}

func (v *Voice) setDetune(d DetuneHz) {
	v.detune = d
	v.bank.Detune(d)
}

func checkDetune(d DetuneHz) error {
	if math32.IsNaN(float32(d)) || math32.IsInf(float32(d), 0) {
		return invalidf("detune must be finite, got %v", d)
	}
	return nil
}

func (v *Voice) State() State                 { return v.state }
func (v *Voice) IsAtTarget() bool             { return v.state == AtTarget }
func (v *Voice) StartFrequency() Frequency    { return v.start }
func (v *Voice) TargetFrequency() Frequency   { return v.target }
func (v *Voice) CurrentFrequency() Frequency  { return v.current }
func (v *Voice) Detune() DetuneHz             { return v.detune }
func (v *Voice) OscillatorCount() int         { return v.bank.Count() }
func (v *Voice) LFOFrequency() Frequency      { return v.lfoBase }
func (v *Voice) Oscillators() *OscillatorBank { return &v.bank }

// Process advances the voice one sample and returns the sum of its
// oscillators.  It never fails: degenerate control points or multipliers
// are clamped, and the result is always finite.
func (v *Voice) Process(m AnimationMultiplier, c1 ControlPoint1, c2 ControlPoint2) Sample {
	return process(v, NopTracer{}, m, c1, c2)
}

// ProcessTraced is Process, reporting the sample to t.
func ProcessTraced[T Tracer](v *Voice, t T, m AnimationMultiplier, c1 ControlPoint1, c2 ControlPoint2) Sample {
	return process(v, t, m, c1, c2)
}

func process[T Tracer](v *Voice, t T, m AnimationMultiplier, c1 ControlPoint1, c2 ControlPoint2) Sample {
	in := v.state
	if v.state == PendingTransitToTarget {
		v.lfo.Reset()
		v.state = InTransitToTarget
	}

	if !(m > 0) || math32.IsInf(float32(m), 0) {
		m = 0
	}
	v.lfo.SetFreq(v.lfoBase * Frequency(m))
	lfo, cycled := v.lfo.Process()
	lfo += LFOAmplitude
	shaped := NewBezierShaper(c1, c2).Shape(lfo)

	unconstrained := Frequency(math32.NaN())
	if v.state == AtTarget {
		v.current = v.target
	} else {
		if v.start > v.target {
			shaped = 1 - shaped
		}
		window := NewRange(float32(v.start), float32(v.target))
		f := NewScaler(UnitRange, window).Scale(shaped)
		unconstrained = Frequency(f)

		switch {
		case cycled,
			!window.Expand(float32(TargetFrequencyTolerance)).Contains(f), // includes NaN
			math32.Abs(f-float32(v.target)) <= float32(TargetFrequencyTolerance):
			v.current = v.target
			v.state = AtTarget
		default:
			v.current = Frequency(window.Constrain(f))
		}
	}

	out := v.bank.Process(v.current)

	t.Trace(TraceRecord{
		Start:         v.start,
		Target:        v.target,
		In:            in,
		Out:           v.state,
		LFO:           lfo,
		Shaped:        shaped,
		Unconstrained: unconstrained,
		Frequency:     v.current,
		Output:        out,
	})
	return out
}
