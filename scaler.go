package deepnote

// A Scaler maps values affinely from one Range onto another.
//
// The input Range must have non-zero length; Scale does not check this
// because it runs on the audio path.
type Scaler struct {
	in, out Range
}

func NewScaler(in, out Range) Scaler {
	return Scaler{in, out}
}

// Scale maps x from the input Range to the output Range.  Values outside
// the input Range extrapolate.
func (s Scaler) Scale(x float32) float32 {
	normalized := (x - s.in.low) / s.in.Length()
	return normalized*s.out.Length() + s.out.low
}
