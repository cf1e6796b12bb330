package deepnote

// A DetunedOscillator is one slot of an OscillatorBank: a sawtooth plus a
// fixed offset from the bank's fundamental.
type DetunedOscillator struct {
	SawOsc
	Offset DetuneHz
}

// OscillatorBank is a fixed-capacity array of oscillators of which the
// first Count are active.  It never allocates.
type OscillatorBank struct {
	osc   [MaxOscillators]DetunedOscillator
	count int
}

// InitAudio initializes every slot, active or not, and resets their phases.
func (b *OscillatorBank) InitAudio(p Params) {
	for i := range b.osc {
		b.osc[i].InitAudio(p)
		b.osc[i].Reset()
	}
}

func (b *OscillatorBank) SetCount(n int) error {
	if err := checkOscillatorCount(n); err != nil {
		return err
	}
	b.count = n
	return nil
}

func (b *OscillatorBank) Count() int { return b.count }

// Offset returns the detune offset of oscillator i.
func (b *OscillatorBank) Offset(i int) DetuneHz { return b.osc[i].Offset }

// Detune spreads the active oscillators around the fundamental in integer
// multiples of d.  With half = n/2, oscillator i gets multiple
// i - half + 1 if i >= half, else i - half; a single oscillator is never
// detuned.  Even counts are symmetric and skip 0 ({-2,-1,+1,+2} for four);
// odd counts are not ({-1,+1,+2} for three).
func (b *OscillatorBank) Detune(d DetuneHz) {
	half := b.count / 2
	for i := 0; i < b.count; i++ {
		if b.count == 1 {
			b.osc[i].Offset = 0
			continue
		}
		m := i - half
		if i >= half {
			m++
		}
		b.osc[i].Offset = DetuneHz(m) * d
	}
}

// Process runs every active oscillator one sample at f plus its offset and
// returns the sum.
func (b *OscillatorBank) Process(f Frequency) Sample {
	var sum float32
	for i := 0; i < b.count; i++ {
		o := &b.osc[i]
		o.SetFreq(f + Frequency(o.Offset))
		sum += o.Saw()
	}
	return Sample(sum)
}

func checkOscillatorCount(n int) error {
	if n < 1 || n > MaxOscillators {
		return invalidf("oscillator count must be in [1, %d], got %d", MaxOscillators, n)
	}
	return nil
}
