package deepnote

// TraceRecord describes one call to Process, for offline analysis.
type TraceRecord struct {
	Start, Target Frequency
	In, Out       State

	// LFO is the normalized ramp in [0, 1]; Shaped is the ramp after the
	// Bezier curve (and inversion, for a descending sweep).
	LFO, Shaped float32

	// Unconstrained is the frequency computed from the curve before
	// convergence and clamping; it is NaN while holding at the target.
	Unconstrained Frequency
	Frequency     Frequency
	Output        Sample
}

// A Tracer receives a TraceRecord for every traced sample.
type Tracer interface {
	Trace(TraceRecord)
}

// NopTracer discards every record.  Process uses it.
type NopTracer struct{}

func (NopTracer) Trace(TraceRecord) {}

// TraceFunc adapts a function to the Tracer interface.
type TraceFunc func(TraceRecord)

func (f TraceFunc) Trace(r TraceRecord) { f(r) }
