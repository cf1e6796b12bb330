package deepnote

const (
	MaxTableRows   = 13
	MaxTableVoices = 9
)

// A FrequencyFunc yields a frequency each time a table cell is read.
type FrequencyFunc func() Frequency

// Fixed returns a FrequencyFunc that always yields f.
func Fixed(f Frequency) FrequencyFunc {
	return func() Frequency { return f }
}

// RandomFrequency returns a FrequencyFunc that draws a new frequency from r
// on every read.
func RandomFrequency(r Range, rand *Rand) FrequencyFunc {
	return func() Frequency { return Frequency(rand.Float32In(r)) }
}

// A FrequencyTable holds preset frequencies by row and voice slot.  Both
// indexes wrap around, so any row and voice index is valid.
type FrequencyTable struct {
	rows   [MaxTableRows][MaxTableVoices]FrequencyFunc
	height int
	width  int
}

// NewFrequencyTable returns a table of the given rows.  There must be 1 to
// MaxTableRows rows, all the same width of 1 to MaxTableVoices, and no nil
// cells.
func NewFrequencyTable(rows [][]FrequencyFunc) (*FrequencyTable, error) {
	if len(rows) < 1 || len(rows) > MaxTableRows {
		return nil, invalidf("frequency table must have 1 to %d rows, got %d", MaxTableRows, len(rows))
	}
	t := &FrequencyTable{height: len(rows), width: len(rows[0])}
	if t.width < 1 || t.width > MaxTableVoices {
		return nil, invalidf("frequency table must have 1 to %d voices, got %d", MaxTableVoices, t.width)
	}
	for i, row := range rows {
		if len(row) != t.width {
			return nil, invalidf("frequency table row %d has %d voices, want %d", i, len(row), t.width)
		}
		for j, f := range row {
			if f == nil {
				return nil, invalidf("frequency table cell (%d, %d) is nil", i, j)
			}
			t.rows[i][j] = f
		}
	}
	return t, nil
}

func (t *FrequencyTable) Rows() int   { return t.height }
func (t *FrequencyTable) Voices() int { return t.width }

// Get returns the frequency at row % Rows(), voice % Voices().
func (t *FrequencyTable) Get(row FrequencyTableIndex, voice VoiceIndex) Frequency {
	return t.rows[int(row)%t.height][int(voice)%t.width]()
}

// Row reads the first n voices of row, wrapping as Get does.  Every
// FrequencyFunc runs on the calling goroutine, so a Row taken on the
// control side keeps random draws off the audio goroutine.
func (t *FrequencyTable) Row(row FrequencyTableIndex, n int) []Frequency {
	fs := make([]Frequency, n)
	for i := range fs {
		fs[i] = t.Get(row, VoiceIndex(i))
	}
	return fs
}

// Deep Note rows.
const (
	StartRow FrequencyTableIndex = iota
	TargetRow
)

// DeepNoteStartRange is where every Deep Note voice begins.
var DeepNoteStartRange = NewRange(200, 400)

// deepNoteChord is the final chord, lowest first.  The top note is doubled
// a few cents sharp for the characteristic beating.
var deepNoteChord = [MaxTableVoices]Frequency{
	36.71, 73.42, 146.83, 293.66, 440.00, 587.33, 1174.66, 1396.91, 1400.00,
}

// DeepNoteTable returns the two-row THX preset: a random cluster in
// DeepNoteStartRange and the final D chord.  Voices beyond the ninth wrap
// around, doubling the chord.
func DeepNoteTable(rand *Rand) *FrequencyTable {
	var start, target []FrequencyFunc
	for _, f := range deepNoteChord {
		start = append(start, RandomFrequency(DeepNoteStartRange, rand))
		target = append(target, Fixed(f))
	}
	t, err := NewFrequencyTable([][]FrequencyFunc{start, target})
	if err != nil {
		panic(err)
	}
	return t
}
