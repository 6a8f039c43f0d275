// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// Generator synthesizes a Source from a waveform function.
type Generator struct {
	sampleRate int
	channels   int
	frames     int // total frames, negative for endless
	pos        int
	wave       func(frame, channel int) float32
}

var _ Source = (*Generator)(nil)

// NewGenerator returns a source of frames frames (negative for endless)
// whose samples come from wave.
func NewGenerator(sampleRate, channels, frames int, wave func(frame, channel int) float32) *Generator {
	return &Generator{
		sampleRate: sampleRate,
		channels:   max(channels, 1),
		frames:     frames,
		wave:       wave,
	}
}

// NewTone returns a sine at freq Hz with the given peak amplitude on every
// channel.
func NewTone(sampleRate, channels, frames int, freq, amplitude float64) *Generator {
	step := 2 * math.Pi * freq / float64(sampleRate)
	return NewGenerator(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(amplitude * math.Sin(step*float64(frame)))
	})
}

func NewSilence(sampleRate, channels, frames int) *Generator {
	return NewGenerator(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

func (g *Generator) SampleRate() int { return g.sampleRate }
func (g *Generator) Channels() int   { return g.channels }
func (g *Generator) BufSize() int    { return 4096 }
func (g *Generator) Close() error    { return nil }

// Reset rewinds the generator to its first frame.
func (g *Generator) Reset() { g.pos = 0 }

func (g *Generator) ReadSamples(dst []float32) (int, error) {
	if g.frames >= 0 && g.pos >= g.frames {
		return 0, io.EOF
	}

	count := len(dst) / g.channels
	if g.frames >= 0 {
		count = min(count, g.frames-g.pos)
	}

	for f := range count {
		for ch := range g.channels {
			dst[f*g.channels+ch] = g.wave(g.pos+f, ch)
		}
	}
	g.pos += count

	if g.frames >= 0 && g.pos >= g.frames {
		return count * g.channels, io.EOF
	}
	return count * g.channels, nil
}
