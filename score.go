package deepnote

import "math"

// A Score drives an Ensemble from a timeline of control events, the way a
// performer would from the control panel, but sample-accurately.
type Score struct {
	ensemble *Ensemble
	delay    EventDelay
	elapsed  int
	err      error
}

func NewScore(e *Ensemble) *Score {
	s := &Score{ensemble: e}
	Init(&s.delay, e.Params)
	return s
}

// At schedules f to run t seconds after the score started.  Events in the
// past run on the next sample.  At must not be called concurrently with
// Process.
//
// f runs on the audio goroutine; it should only make Ensemble control
// calls.  The first error any f returns is kept and reported by Err.
func (s *Score) At(t float64, f func(*Ensemble) error) {
	n := int(math.Round(t*float64(s.Params().SampleRate))) - s.elapsed + 1
	if n < 1 {
		n = 1
	}
	s.delay.DelaySamples(n, func() {
		if err := f(s.ensemble); err != nil && s.err == nil {
			s.err = err
		}
	})
}

func (s *Score) Params() Params { return s.ensemble.Params }

// Err returns the first error returned by a scheduled event.
func (s *Score) Err() error { return s.err }

// Done reports whether every scheduled event has run.
func (s *Score) Done() bool { return s.delay.Pending() == 0 }

// Elapsed returns the number of samples processed so far.
func (s *Score) Elapsed() int { return s.elapsed }

// Process runs due events and renders the ensemble, applying control
// changes between samples.
func (s *Score) Process(out []float32) {
	e := s.ensemble
	for i := range out {
		s.delay.Step()
		e.drain()
		out[i] = e.sample()
		s.elapsed++
	}
	e.publish()
}

// DeepNoteScore schedules the THX sweep on s: every voice jumps into the
// random start cluster of t at once, holds for hold seconds, then sweeps
// to the final chord.  Both rows are read from t now, not when the events
// run.
func DeepNoteScore(s *Score, t *FrequencyTable, hold float64) {
	n := s.ensemble.Len()
	start, target := t.Row(StartRow, n), t.Row(TargetRow, n)
	s.At(0, func(e *Ensemble) error { return e.Hold(start) })
	s.At(hold, func(e *Ensemble) error { return e.Sweep(target) })
}
