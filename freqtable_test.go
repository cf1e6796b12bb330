package deepnote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRow(fs ...Frequency) []FrequencyFunc {
	var row []FrequencyFunc
	for _, f := range fs {
		row = append(row, Fixed(f))
	}
	return row
}

func TestNewFrequencyTableRejectsBadShapes(t *testing.T) {
	tooMany := make([][]FrequencyFunc, MaxTableRows+1)
	for i := range tooMany {
		tooMany[i] = fixedRow(1)
	}
	tests := map[string][][]FrequencyFunc{
		"no rows":       nil,
		"too many rows": tooMany,
		"empty row":     {{}},
		"too wide":      {fixedRow(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)},
		"ragged":        {fixedRow(1, 2), fixedRow(3)},
		"nil cell":      {{Fixed(1), nil}},
	}
	for name, rows := range tests {
		_, err := NewFrequencyTable(rows)
		assert.ErrorIs(t, err, ErrInvalidParameter, name)
	}
}

func TestFrequencyTableGetWraps(t *testing.T) {
	ft, err := NewFrequencyTable([][]FrequencyFunc{
		fixedRow(10, 11, 12),
		fixedRow(20, 21, 22),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ft.Rows())
	assert.Equal(t, 3, ft.Voices())

	assert.Equal(t, Frequency(21), ft.Get(1, 1))
	assert.Equal(t, Frequency(21), ft.Get(3, 4))
	assert.Equal(t, Frequency(10), ft.Get(2, 3))
}

func TestRandomFrequency(t *testing.T) {
	r := NewRange(200, 400)
	a := RandomFrequency(r, NewRand(7))
	b := RandomFrequency(r, NewRand(7))
	seen := map[Frequency]bool{}
	for i := 0; i < 1000; i++ {
		f := a()
		require.True(t, r.Contains(float32(f)), "%v outside %v", f, r)
		require.Equal(t, f, b(), "same seed must give the same frequencies")
		seen[f] = true
	}
	assert.Greater(t, len(seen), 900, "expected a fresh frequency on each read")
}

func TestDeepNoteTable(t *testing.T) {
	ft := DeepNoteTable(NewRand(0))
	require.Equal(t, 2, ft.Rows())
	require.Equal(t, MaxTableVoices, ft.Voices())

	for i, want := range deepNoteChord {
		assert.Equal(t, want, ft.Get(TargetRow, VoiceIndex(i)))
		f := ft.Get(StartRow, VoiceIndex(i))
		assert.True(t, DeepNoteStartRange.Contains(float32(f)), "voice %d starts at %v", i, f)
	}
	assert.Equal(t, deepNoteChord[0], ft.Get(TargetRow, MaxTableVoices))
}
