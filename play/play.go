// Package play sends a deepnote.Processor to the sound card.
package play

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/gordonklaus/deepnote"
)

// A Backend pulls mono float32 audio from a Processor on its own
// goroutine until closed.
type Backend interface {
	Start(src deepnote.Processor) error
	Close() error
}

// Config selects a backend and the stream it opens.
type Config struct {
	SampleRate   int
	BufferFrames int
	Logger       *slog.Logger
}

type opener func(Config) (Backend, error)

var backends = map[string]opener{}

func register(name string, open opener) { backends[name] = open }

// Backends lists the available backend names.
func Backends() []string {
	var names []string
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open returns the named backend.
func Open(name string, c Config) (Backend, error) {
	open, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("play: unknown backend %q (have %v)", name, Backends())
	}
	if c.SampleRate <= 0 {
		return nil, fmt.Errorf("play: sample rate must be positive, got %d", c.SampleRate)
	}
	if c.BufferFrames <= 0 {
		return nil, fmt.Errorf("play: buffer must hold at least one frame, got %d", c.BufferFrames)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return open(c)
}
