package play

import (
	"github.com/gordonklaus/portaudio"

	"github.com/gordonklaus/deepnote"
)

func init() { register("portaudio", openPortAudio) }

// portAudio is callback-driven: PortAudio calls Process on its real-time
// thread once per buffer.
type portAudio struct {
	c      Config
	stream *portaudio.Stream
}

func openPortAudio(c Config) (Backend, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	return &portAudio{c: c}, nil
}

func (p *portAudio) Start(src deepnote.Processor) error {
	var err error
	p.stream, err = portaudio.OpenDefaultStream(0, 1, float64(p.c.SampleRate), p.c.BufferFrames, func(out []float32) {
		src.Process(out)
	})
	if err != nil {
		return err
	}
	p.c.Logger.Info("portaudio stream open", "rate", p.c.SampleRate, "frames", p.c.BufferFrames)
	return p.stream.Start()
}

func (p *portAudio) Close() error {
	defer portaudio.Terminate()
	if p.stream == nil {
		return nil
	}
	if err := p.stream.Stop(); err != nil {
		p.c.Logger.Warn("portaudio stop", "err", err)
	}
	return p.stream.Close()
}
