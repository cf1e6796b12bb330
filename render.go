package deepnote

import "github.com/go-audio/audio"

// Render pulls frames samples from p, block samples at a time, into a mono
// buffer at rate.
func Render(p Processor, rate SampleRate, frames, block int) *audio.Float32Buffer {
	if block < 1 {
		block = 1
	}
	buf := &audio.Float32Buffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(rate)},
		Data:           make([]float32, frames),
		SourceBitDepth: 32,
	}
	for i := 0; i < frames; i += block {
		end := i + block
		if end > frames {
			end = frames
		}
		p.Process(buf.Data[i:end])
	}
	return buf
}
