package deepnote

// AnimationLFO drives a voice's sweep.  It is a ramp of amplitude
// LFOAmplitude whose frequency is rescaled every sample.
type AnimationLFO struct {
	ramp RampOsc
}

func (l *AnimationLFO) InitAudio(p Params) {
	l.ramp.Amp = LFOAmplitude
	l.ramp.InitAudio(p)
}

// SetFreq sets the instantaneous frequency.  Negative and NaN frequencies
// stop the ramp.
func (l *AnimationLFO) SetFreq(f Frequency) {
	if !(f > 0) {
		f = 0
	}
	l.ramp.SetFreq(f)
}

// Reset restarts the ramp from its lowest value.
func (l *AnimationLFO) Reset() { l.ramp.Reset() }

// Process advances one sample, returning a value in [-LFOAmplitude,
// LFOAmplitude) and whether this sample ended a cycle.
func (l *AnimationLFO) Process() (float32, bool) {
	return l.ramp.Ramp()
}
