// Command deepnote plays the THX Deep Note: a cluster of detuned voices
// wandering between 200 and 400 Hz that sweeps out to a wide D chord.
//
// Usage:
//
//	deepnote [flags]
//
// With -interactive the terminal becomes the control panel:
//
//	s  hold a fresh start cluster
//	t  sweep to the final chord
//	r  sweep to a fresh start cluster
//	+  double the sweep speed      -  halve it
//	]  widen the detune            [  narrow it
//	q  fade out and quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gordonklaus/deepnote"
	"github.com/gordonklaus/deepnote/analysis"
	"github.com/gordonklaus/deepnote/play"
)

type config struct {
	backend     string
	sampleRate  int
	buffer      int
	voices      int
	oscillators int
	lfo         float64
	hold        float64
	duration    float64
	detune      float64
	multiplier  float64
	cp1, cp2    float64
	volume      float64
	cutoff      float64
	limit       float64
	reverb      float64
	reverbDecay float64
	seed        int64
	interactive bool
	logLevel    string
}

func parseFlags(args []string, usage io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("deepnote", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&c.backend, "backend", "oto", "audio backend: "+strings.Join(play.Backends(), ", ")+", or none to render offline")
	fs.IntVar(&c.sampleRate, "rate", 48000, "sample rate in Hz")
	fs.IntVar(&c.buffer, "buffer", 256, "frames per audio callback")
	fs.IntVar(&c.voices, "voices", 26, "number of voices")
	fs.IntVar(&c.oscillators, "oscillators", 3, fmt.Sprintf("oscillators per voice (1-%d)", deepnote.MaxOscillators))
	fs.Float64Var(&c.lfo, "lfo", 0.125, "animation LFO rate in Hz; a sweep lasts one LFO cycle")
	fs.Float64Var(&c.hold, "hold", 2, "seconds to hold the start cluster before sweeping")
	fs.Float64Var(&c.duration, "duration", 0, "seconds to play before fading out (0: until the sweep ends plus 4s, or until q with -interactive)")
	fs.Float64Var(&c.detune, "detune", float64(deepnote.DefaultDetuneHz), "oscillator spacing in Hz")
	fs.Float64Var(&c.multiplier, "multiplier", 1, "sweep speed multiplier")
	fs.Float64Var(&c.cp1, "cp1", 0.08, "first Bezier control point of the sweep curve")
	fs.Float64Var(&c.cp2, "cp2", 0.5, "second Bezier control point of the sweep curve")
	fs.Float64Var(&c.volume, "volume", 0.5, "output volume")
	fs.Float64Var(&c.cutoff, "cutoff", 0, "tone low-pass cutoff in Hz (0: off)")
	fs.Float64Var(&c.reverb, "reverb", 0.25, "reverb wet mix in [0, 1] (0: off)")
	fs.Float64Var(&c.reverbDecay, "reverb-decay", 4, "reverb decay time in seconds")
	fs.Float64Var(&c.limit, "limit", 0.3, "RMS level the output limiter holds to")
	fs.Int64Var(&c.seed, "seed", 0, "random seed for the start cluster (0: time)")
	fs.BoolVar(&c.interactive, "interactive", false, "control the sweep from the keyboard")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return c, c.validate()
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{deepnote.ErrInvalidParameter}, args...)...)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func (c config) validate() error {
	switch {
	case c.sampleRate <= 0:
		return invalid("-rate must be positive, got %d", c.sampleRate)
	case c.buffer <= 0:
		return invalid("-buffer must be positive, got %d", c.buffer)
	case c.voices < 1:
		return invalid("-voices must be at least 1, got %d", c.voices)
	case c.oscillators < 1 || c.oscillators > deepnote.MaxOscillators:
		return invalid("-oscillators must be in [1, %d], got %d", deepnote.MaxOscillators, c.oscillators)
	case !(c.lfo > 0) || !finite(c.lfo):
		return invalid("-lfo must be positive, got %g", c.lfo)
	case !(c.multiplier >= 0) || !finite(c.multiplier):
		return invalid("-multiplier must not be negative, got %g", c.multiplier)
	case c.multiplier == 0 && c.duration == 0 && !c.interactive:
		return invalid("-multiplier 0 freezes the sweep, so it needs a -duration")
	case !(c.hold >= 0) || !finite(c.hold):
		return invalid("-hold must not be negative, got %g", c.hold)
	case !(c.duration >= 0) || !finite(c.duration):
		return invalid("-duration must not be negative, got %g", c.duration)
	case !(c.reverb >= 0 && c.reverb <= 1):
		return invalid("-reverb must be in [0, 1], got %g", c.reverb)
	case !(c.reverbDecay > 0) || !finite(c.reverbDecay):
		return invalid("-reverb-decay must be positive, got %g", c.reverbDecay)
	case c.backend == "none" && c.interactive:
		return invalid("-interactive needs an audio backend")
	}
	return nil
}

// sweepSeconds is how long the piece runs: the given duration, or else the
// hold, one sweep and four seconds of ringing.  validate guarantees a
// finite result.
func (c config) sweepSeconds() float64 {
	if c.duration > 0 {
		return c.duration
	}
	return c.hold + 1/(c.lfo*c.multiplier) + 4
}

func resolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

func newLogger(level string) (*slog.Logger, error) {
	l, err := resolveLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

// piece is everything between the frequency table and the audio device.
type piece struct {
	table    *deepnote.FrequencyTable
	ensemble *deepnote.Ensemble
	score    *deepnote.Score
	master   *deepnote.Master
}

func newPiece(c config) (*piece, error) {
	rate := deepnote.SampleRate(c.sampleRate)
	e, err := deepnote.NewEnsemble(c.voices, c.oscillators, rate, deepnote.Frequency(c.lfo),
		deepnote.WithEnsembleDetune(deepnote.DetuneHz(c.detune)),
		deepnote.WithGain(1/float32(c.voices*c.oscillators)),
		deepnote.WithAnimation(deepnote.AnimationMultiplier(c.multiplier), deepnote.ControlPoint1(c.cp1), deepnote.ControlPoint2(c.cp2)),
	)
	if err != nil {
		return nil, err
	}
	p := &piece{
		table:    deepnote.DeepNoteTable(deepnote.NewRand(c.seed)),
		ensemble: e,
		score:    deepnote.NewScore(e),
	}
	if c.interactive {
		start := p.table.Row(deepnote.StartRow, e.Len())
		p.score.At(0, func(e *deepnote.Ensemble) error { return e.Hold(start) })
	} else {
		deepnote.DeepNoteScore(p.score, p.table, c.hold)
	}
	p.master = deepnote.NewMaster(p.score, c.volume, c.cutoff, c.limit)
	if c.reverb > 0 {
		p.master.Reverb = deepnote.NewReverb(0.2, c.reverbDecay, c.reverb, c.seed)
	}
	deepnote.Init(p.master, deepnote.Params{SampleRate: rate, BufferSize: c.buffer})
	return p, nil
}

func main() {
	c, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "deepnote:", err)
		os.Exit(2)
	}
	logger, err := newLogger(c.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "deepnote:", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	if err := run(c, logger); err != nil {
		logger.Error("deepnote failed", "err", err)
		os.Exit(1)
	}
}

func run(c config, logger *slog.Logger) error {
	p, err := newPiece(c)
	if err != nil {
		return err
	}
	logger.Info("deepnote", "voices", c.voices, "oscillators", c.oscillators, "backend", c.backend)

	if c.backend == "none" {
		return renderOffline(c, p, logger)
	}

	b, err := play.Open(c.backend, play.Config{SampleRate: c.sampleRate, BufferFrames: c.buffer, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Warn("closing backend", "err", err)
		}
	}()
	if err := b.Start(p.master); err != nil {
		return err
	}

	if c.interactive {
		err = control(p, c, os.Stdin, os.Stdout, logger)
	} else {
		time.Sleep(time.Duration(c.sweepSeconds() * float64(time.Second)))
	}
	fadeOut(p.master)
	if err == nil {
		err = p.score.Err()
	}
	return err
}

func fadeOut(m *deepnote.Master) {
	m.Release()
	deadline := time.Now().Add(5 * time.Second)
	for !m.Done() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
}

func renderOffline(c config, p *piece, logger *slog.Logger) error {
	frames := int(c.sweepSeconds() * float64(c.sampleRate))
	start := time.Now()
	buf := deepnote.Render(p.master, deepnote.SampleRate(c.sampleRate), frames, c.buffer)
	if err := p.score.Err(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	tail := buf.Data
	if n := c.sampleRate; len(tail) > n {
		tail = tail[len(tail)-n:]
	}
	tailBuf := *buf
	tailBuf.Data = tail
	dominant, err := analysis.DominantFrequency(&tailBuf)
	if err != nil {
		return err
	}
	logger.Info("rendered",
		"seconds", float64(frames)/float64(c.sampleRate),
		"realtime", float64(frames)/float64(c.sampleRate)/elapsed.Seconds(),
		"at_target", p.ensemble.AtTarget(),
		"rms", analysis.RMS(buf.Data),
		"peak", analysis.Peak(buf.Data),
		"non_finite", analysis.NonFinite(buf.Data),
		"dominant_hz", dominant,
	)
	return nil
}
