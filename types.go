package deepnote

// Frequency is an oscillator frequency in Hz.
type Frequency float32

// SampleRate is an audio sample rate in Hz.
type SampleRate float32

// DetuneHz is the spacing, in Hz, between adjacent oscillators of a bank.
type DetuneHz float32

// AnimationMultiplier scales the speed of a voice's sweep.
type AnimationMultiplier float32

// ControlPoint1 and ControlPoint2 are the free ordinates of the sweep's
// Bezier curve.
type (
	ControlPoint1 float32
	ControlPoint2 float32
)

// Sample is one unnormalized output sample.
type Sample float32

// FrequencyTableIndex selects a row of a FrequencyTable.
type FrequencyTableIndex uint

// VoiceIndex selects a voice slot of a FrequencyTable.
type VoiceIndex uint

const (
	// MaxOscillators is the capacity of an OscillatorBank.
	MaxOscillators = 16

	// DefaultDetuneHz is the detune applied by Voice.Init unless WithDetune
	// says otherwise.
	DefaultDetuneHz DetuneHz = 2.5

	// TargetFrequencyTolerance is the window within which a sweep counts as
	// having reached its target.
	TargetFrequencyTolerance Frequency = 1

	// LFOAmplitude is the amplitude of the animation ramp.
	LFOAmplitude float32 = 0.5
)
