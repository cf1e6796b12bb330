package play

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/gordonklaus/deepnote"
)

func init() { register("oto", openOto) }

// otoBackend is pull-driven: oto reads bytes from reader on its own
// goroutine.
type otoBackend struct {
	c      Config
	ctx    *oto.Context
	player *oto.Player
	mu     sync.Mutex
}

func openOto(c Config) (Backend, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   c.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready
	return &otoBackend{c: c, ctx: ctx}, nil
}

func (o *otoBackend) Start(src deepnote.Processor) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.player = o.ctx.NewPlayer(&reader{src: src, buf: make([]float32, o.c.BufferFrames)})
	o.player.Play()
	o.c.Logger.Info("oto player started", "rate", o.c.SampleRate)
	return nil
}

func (o *otoBackend) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player == nil {
		return nil
	}
	err := o.player.Close()
	o.player = nil
	return err
}

// reader renders a Processor as little-endian float32 bytes.  Its buffer is
// allocated up front and only grows if oto asks for more than it holds.
type reader struct {
	src deepnote.Processor
	buf []float32
}

func (r *reader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if n > len(r.buf) {
		r.buf = make([]float32, n)
	}
	samples := r.buf[:n]
	r.src.Process(samples)
	for i, x := range samples {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(x))
	}
	return 4 * n, nil
}
