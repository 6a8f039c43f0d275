// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// DefaultFrameLength is the number of samples per analysis frame.
const DefaultFrameLength = 1024

// Frame is one fixed-length block of mono samples.
type Frame struct {
	Index   uint64
	Samples []float64
}

// FrameSource delivers consecutive frames. NextFrame blocks until a full
// frame is available and returns io.EOF once the stream is exhausted.
type FrameSource interface {
	NextFrame(ctx context.Context) (Frame, error)
	SampleRate() int
	FrameLength() int
	Close() error
}

// Framer cuts a Source into mono frames of a fixed length.
// Multi-channel sources are downmixed first. A short final frame is padded
// with silence.
type Framer struct {
	src  Source
	n    int
	buf  []float32
	next uint64
	done bool
}

var _ FrameSource = (*Framer)(nil)

func NewFramer(src Source, frameLength int) (*Framer, error) {
	if frameLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameLength, frameLength)
	}
	if src.Channels() > 1 {
		src = NewMonoMixer(src)
	}

	return &Framer{
		src: src,
		n:   frameLength,
		buf: make([]float32, frameLength),
	}, nil
}

func (f *Framer) SampleRate() int  { return f.src.SampleRate() }
func (f *Framer) FrameLength() int { return f.n }
func (f *Framer) Close() error     { return f.src.Close() }

func (f *Framer) NextFrame(ctx context.Context) (Frame, error) {
	if f.done {
		return Frame{}, io.EOF
	}

	filled := 0
	for filled < f.n {
		if err := ctx.Err(); err != nil {
			return Frame{}, err
		}

		n, err := f.src.ReadSamples(f.buf[filled:])
		filled += n
		if errors.Is(err, io.EOF) {
			f.done = true
			break
		}
		if err != nil {
			return Frame{}, fmt.Errorf("read frame %d: %w", f.next, err)
		}
		if n == 0 {
			f.done = true
			break
		}
	}

	if filled == 0 {
		return Frame{}, io.EOF
	}

	samples := make([]float64, f.n)
	for i, v := range f.buf[:filled] {
		samples[i] = float64(v)
	}

	fr := Frame{Index: f.next, Samples: samples}
	f.next++
	return fr, nil
}
