package deepnote

import "testing"

func TestFade(t *testing.T) {
	f := NewFade(.01, .1)
	Init(f, Params{SampleRate: 1000})

	for i := 0; i < 10; i++ {
		f.Next()
	}
	if l := f.Next(); l < .99 {
		t.Errorf("expected the fade-in to reach 40 dB in 10 samples, got %v", l)
	}
	if f.Silent() {
		t.Error("silent before release")
	}

	f.Release()
	n := 0
	for !f.Silent() {
		n++
		if n > 1000 {
			t.Fatal("never fell silent")
		}
		f.Next()
	}
	if n < 190 || n > 210 {
		t.Errorf("expected 80 dB of fade-out in about 200 samples, took %d", n)
	}
}

func TestFade_instant(t *testing.T) {
	f := NewFade(0, 0)
	Init(f, Params{SampleRate: 1000})
	if l := f.Next(); l != 1 {
		t.Errorf("expected an instant fade-in, got %v", l)
	}
	f.Release()
	f.Next()
	if !f.Silent() {
		t.Error("expected an instant fade-out")
	}
}

func BenchmarkFade(b *testing.B) {
	f := NewFade(.1, 2)
	Init(f, Params{SampleRate: 96000})
	for i := 0; i < b.N; i++ {
		if i%96000 == 0 {
			f.Release()
		}
		f.Next()
	}
}
