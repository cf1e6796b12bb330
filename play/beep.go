package play

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gordonklaus/deepnote"
)

func init() { register("beep", openBeep) }

type beepBackend struct {
	c Config
}

func openBeep(c Config) (Backend, error) {
	sr := beep.SampleRate(c.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Duration(c.BufferFrames)*time.Second/time.Duration(c.SampleRate))); err != nil {
		return nil, err
	}
	return &beepBackend{c: c}, nil
}

func (b *beepBackend) Start(src deepnote.Processor) error {
	speaker.Play(Streamer(src))
	b.c.Logger.Info("beep speaker started", "rate", b.c.SampleRate)
	return nil
}

func (b *beepBackend) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

// Streamer adapts a mono Processor to a stereo beep.Streamer that never
// ends.
func Streamer(src deepnote.Processor) beep.Streamer {
	var buf []float32
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if len(samples) > len(buf) {
			buf = make([]float32, len(samples))
		}
		mono := buf[:len(samples)]
		src.Process(mono)
		for i, x := range mono {
			samples[i][0] = float64(x)
			samples[i][1] = float64(x)
		}
		return len(samples), true
	})
}
