package deepnote

import (
	"errors"
	"sync/atomic"

	"github.com/chewxy/math32"
)

// ErrCommandQueueFull is returned by Ensemble control calls when the audio
// goroutine has fallen too far behind to take another command.
var ErrCommandQueueFull = errors.New("deepnote: command queue full")

// A Processor fills a mono buffer with the next len(out) samples.
type Processor interface {
	Process(out []float32)
}

type commandKind int

const (
	setTarget commandKind = iota
	setStart
	setDetune
	setAnimation
)

type command struct {
	kind  commandKind
	voice int
	f     Frequency
	d     DetuneHz
	m     AnimationMultiplier
	c1    ControlPoint1
	c2    ControlPoint2
}

// An Ensemble sums a fixed set of voices.
//
// Control methods may be called from any goroutine: they validate their
// arguments, returning an error immediately, and queue the change for the
// audio goroutine, which applies it between samples.  The audio goroutine
// never waits for the control side.  Process must only be called from one
// goroutine at a time.
type Ensemble struct {
	Params Params

	voices []Voice
	gain   float32
	m      AnimationMultiplier
	c1     ControlPoint1
	c2     ControlPoint2

	cmds     chan command
	atTarget atomic.Int32
}

type ensembleOptions struct {
	gain    float32
	detune  DetuneHz
	m       AnimationMultiplier
	c1      ControlPoint1
	c2      ControlPoint2
	cmdSize int
}

// An EnsembleOption configures NewEnsemble.
type EnsembleOption func(*ensembleOptions)

// WithGain scales the summed output (default 1).
func WithGain(g float32) EnsembleOption {
	return func(o *ensembleOptions) { o.gain = g }
}

// WithEnsembleDetune sets every voice's detune (default DefaultDetuneHz).
func WithEnsembleDetune(d DetuneHz) EnsembleOption {
	return func(o *ensembleOptions) { o.detune = d }
}

// WithAnimation sets the initial sweep speed and curve (default 1, 0.08,
// 0.5).
func WithAnimation(m AnimationMultiplier, c1 ControlPoint1, c2 ControlPoint2) EnsembleOption {
	return func(o *ensembleOptions) { o.m, o.c1, o.c2 = m, c1, c2 }
}

// WithCommandBuffer sets how many control changes may be pending (default
// 1024).
func WithCommandBuffer(n int) EnsembleOption {
	return func(o *ensembleOptions) { o.cmdSize = n }
}

// NewEnsemble returns n voices of the given oscillator count, each holding
// at 0 Hz until given a start or target frequency.
func NewEnsemble(n, oscillators int, rate SampleRate, lfo Frequency, opts ...EnsembleOption) (*Ensemble, error) {
	o := ensembleOptions{gain: 1, detune: DefaultDetuneHz, m: 1, c1: 0.08, c2: 0.5, cmdSize: 1024}
	for _, opt := range opts {
		opt(&o)
	}
	if n < 1 {
		return nil, invalidf("ensemble needs at least one voice, got %d", n)
	}
	if err := checkOscillatorCount(oscillators); err != nil {
		return nil, err
	}
	if o.cmdSize < 1 {
		return nil, invalidf("command buffer must hold at least one command, got %d", o.cmdSize)
	}
	if math32.IsNaN(o.gain) || math32.IsInf(o.gain, 0) {
		return nil, invalidf("gain must be finite, got %v", o.gain)
	}
	if err := checkMultiplier(o.m); err != nil {
		return nil, err
	}
	e := &Ensemble{
		Params: Params{SampleRate: rate},
		voices: make([]Voice, n),
		gain:   o.gain,
		m:      o.m,
		c1:     o.c1,
		c2:     o.c2,
		cmds:   make(chan command, o.cmdSize),
	}
	for i := range e.voices {
		if err := e.voices[i].Init(oscillators, 0, rate, lfo, WithDetune(o.detune)); err != nil {
			return nil, err
		}
	}
	e.atTarget.Store(int32(n))
	return e, nil
}

func checkMultiplier(m AnimationMultiplier) error {
	if !(m >= 0) || math32.IsInf(float32(m), 0) {
		return invalidf("animation multiplier must be finite and non-negative, got %v", m)
	}
	return nil
}

func (e *Ensemble) Len() int { return len(e.voices) }

// Voice returns voice i.  It is only safe to use while nothing is calling
// Process.
func (e *Ensemble) Voice(i int) *Voice { return &e.voices[i] }

// AtTarget reports how many voices had converged at the end of the last
// processed block.
func (e *Ensemble) AtTarget() int { return int(e.atTarget.Load()) }

func (e *Ensemble) send(c command) error {
	select {
	case e.cmds <- c:
		return nil
	default:
		return ErrCommandQueueFull
	}
}

func (e *Ensemble) checkVoice(i int) error {
	if i < 0 || i >= len(e.voices) {
		return invalidf("voice %d out of range [0, %d)", i, len(e.voices))
	}
	return nil
}

// SetTargetFrequency sweeps voice i to f.
func (e *Ensemble) SetTargetFrequency(i int, f Frequency) error {
	if err := e.checkVoice(i); err != nil {
		return err
	}
	if err := checkFrequency("target frequency", f); err != nil {
		return err
	}
	return e.send(command{kind: setTarget, voice: i, f: f})
}

// SetStartFrequency jumps voice i to f.
func (e *Ensemble) SetStartFrequency(i int, f Frequency) error {
	if err := e.checkVoice(i); err != nil {
		return err
	}
	if err := checkFrequency("start frequency", f); err != nil {
		return err
	}
	return e.send(command{kind: setStart, voice: i, f: f})
}

// ApplyTargets sweeps voice i to t.Get(row, i) for every voice.  The table
// is read on the calling goroutine.
func (e *Ensemble) ApplyTargets(t *FrequencyTable, row FrequencyTableIndex) error {
	return e.Sweep(t.Row(row, len(e.voices)))
}

// ApplyStarts jumps voice i to t.Get(row, i) for every voice.
func (e *Ensemble) ApplyStarts(t *FrequencyTable, row FrequencyTableIndex) error {
	fs := t.Row(row, len(e.voices))
	for i, f := range fs {
		if err := e.SetStartFrequency(i, f); err != nil {
			return err
		}
	}
	return nil
}

// ApplyHolds jumps voice i to t.Get(row, i) and holds it there, for every
// voice.
func (e *Ensemble) ApplyHolds(t *FrequencyTable, row FrequencyTableIndex) error {
	return e.Hold(t.Row(row, len(e.voices)))
}

// Sweep sweeps voice i to fs[i], for every voice.
func (e *Ensemble) Sweep(fs []Frequency) error {
	if err := e.checkFrequencies(fs); err != nil {
		return err
	}
	for i, f := range fs {
		if err := e.SetTargetFrequency(i, f); err != nil {
			return err
		}
	}
	return nil
}

// Hold jumps voice i to fs[i] and holds it there, for every voice.
func (e *Ensemble) Hold(fs []Frequency) error {
	if err := e.checkFrequencies(fs); err != nil {
		return err
	}
	for i, f := range fs {
		if err := e.SetStartFrequency(i, f); err != nil {
			return err
		}
		if err := e.SetTargetFrequency(i, f); err != nil {
			return err
		}
	}
	return nil
}

func (e *Ensemble) checkFrequencies(fs []Frequency) error {
	if len(fs) != len(e.voices) {
		return invalidf("need a frequency for each of %d voices, got %d", len(e.voices), len(fs))
	}
	for _, f := range fs {
		if err := checkFrequency("frequency", f); err != nil {
			return err
		}
	}
	return nil
}

// DetuneOscillators respaces the oscillators of every voice.
func (e *Ensemble) DetuneOscillators(d DetuneHz) error {
	if err := checkDetune(d); err != nil {
		return err
	}
	return e.send(command{kind: setDetune, d: d})
}

// SetAnimation changes the sweep speed and curve of every voice.
func (e *Ensemble) SetAnimation(m AnimationMultiplier, c1 ControlPoint1, c2 ControlPoint2) error {
	if err := checkMultiplier(m); err != nil {
		return err
	}
	return e.send(command{kind: setAnimation, m: m, c1: c1, c2: c2})
}

// drain applies every pending command.  Commands were validated when they
// were queued.
func (e *Ensemble) drain() {
	for {
		select {
		case c := <-e.cmds:
			e.apply(c)
		default:
			return
		}
	}
}

func (e *Ensemble) apply(c command) {
	switch c.kind {
	case setTarget:
		e.voices[c.voice].setTarget(c.f)
	case setStart:
		e.voices[c.voice].setStart(c.f)
	case setDetune:
		for i := range e.voices {
			e.voices[i].setDetune(c.d)
		}
	case setAnimation:
		e.m, e.c1, e.c2 = c.m, c.c1, c.c2
	}
}

func (e *Ensemble) sample() float32 {
	var sum Sample
	for i := range e.voices {
		sum += e.voices[i].Process(e.m, e.c1, e.c2)
	}
	return float32(sum) * e.gain
}

func (e *Ensemble) publish() {
	n := 0
	for i := range e.voices {
		if e.voices[i].IsAtTarget() {
			n++
		}
	}
	e.atTarget.Store(int32(n))
}

// Process applies pending control changes and fills out with the gained
// sum of all voices.
func (e *Ensemble) Process(out []float32) {
	e.drain()
	for i := range out {
		out[i] = e.sample()
	}
	e.publish()
}
