package play

import (
	"fmt"

	"github.com/jfreymuth/pulse"

	"github.com/gordonklaus/deepnote"
)

func init() { register("pulse", openPulse) }

// pulseBackend talks to a PulseAudio (or PipeWire) server directly, without
// cgo.  The server pulls samples through a Float32Reader.
type pulseBackend struct {
	c      Config
	client *pulse.Client
	stream *pulse.PlaybackStream
}

func openPulse(c Config) (Backend, error) {
	client, err := pulse.NewClient(pulse.ClientApplicationName("deepnote"))
	if err != nil {
		return nil, fmt.Errorf("play: pulse: %w", err)
	}
	return &pulseBackend{c: c, client: client}, nil
}

func (p *pulseBackend) Start(src deepnote.Processor) error {
	read := func(out []float32) (int, error) {
		src.Process(out)
		return len(out), nil
	}
	stream, err := p.client.NewPlayback(pulse.Float32Reader(read),
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(p.c.SampleRate),
		pulse.PlaybackLatency(float64(p.c.BufferFrames)/float64(p.c.SampleRate)),
	)
	if err != nil {
		return fmt.Errorf("play: pulse playback: %w", err)
	}
	p.stream = stream
	stream.Start()
	p.c.Logger.Info("pulse stream started", "rate", p.c.SampleRate)
	return nil
}

func (p *pulseBackend) Close() error {
	if p.stream != nil {
		p.stream.Stop()
		p.stream.Close()
	}
	p.client.Close()
	return nil
}
