package deepnote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOscillatorBankDetune(t *testing.T) {
	tests := []struct {
		n    int
		want []DetuneHz
	}{
		{1, []DetuneHz{0}},
		{2, []DetuneHz{-1, 1}},
		{3, []DetuneHz{-1, 1, 2}},
		{4, []DetuneHz{-2, -1, 1, 2}},
		{5, []DetuneHz{-2, -1, 1, 2, 3}},
		{16, []DetuneHz{-8, -7, -6, -5, -4, -3, -2, -1, 1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, tt := range tests {
		var b OscillatorBank
		require.NoError(t, b.SetCount(tt.n))
		b.Detune(2.5)
		var got []DetuneHz
		for i := 0; i < b.Count(); i++ {
			got = append(got, b.Offset(i)/2.5)
		}
		assert.Equal(t, tt.want, got, "%d oscillators", tt.n)
	}
}

func TestOscillatorBankSetCount(t *testing.T) {
	var b OscillatorBank
	for _, n := range []int{0, -1, MaxOscillators + 1} {
		assert.ErrorIs(t, b.SetCount(n), ErrInvalidParameter, "count %d", n)
	}
	require.NoError(t, b.SetCount(MaxOscillators))
	assert.Equal(t, MaxOscillators, b.Count())
}

func TestOscillatorBankSumsActiveOscillators(t *testing.T) {
	var one, three OscillatorBank
	require.NoError(t, one.SetCount(1))
	require.NoError(t, three.SetCount(3))
	Init(&one, Params{SampleRate: 48000})
	Init(&three, Params{SampleRate: 48000})
	three.Detune(0)

	for i := 0; i < 1000; i++ {
		a, b := one.Process(220), three.Process(220)
		require.InDelta(t, 3*float64(a), float64(b), 1e-5, "sample %d", i)
	}
}
