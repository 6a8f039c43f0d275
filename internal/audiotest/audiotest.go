// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides scripted frame sources and recording renderers
// for tests.
package audiotest

import (
	"context"
	"io"
	"math"
	"sync"

	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/pipeline"
)

// Sine returns n samples of a unit sine at freq Hz.
func Sine(n int, freq float64, sampleRate int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return out
}

// FrameSource replays a fixed list of frames. After the last one it returns
// its end error (io.EOF unless set with WithEnd), or, when held, blocks
// until the context ends.
type FrameSource struct {
	rate   int
	n      int
	frames [][]float64
	end    error
	hold   bool

	mu     sync.Mutex
	next   int
	closed bool
}

var _ audio.FrameSource = (*FrameSource)(nil)

func NewFrameSource(sampleRate, frameLength int, frames ...[]float64) *FrameSource {
	return &FrameSource{
		rate:   sampleRate,
		n:      frameLength,
		frames: frames,
		end:    io.EOF,
	}
}

// WithEnd sets the error returned once the frames run out.
func (s *FrameSource) WithEnd(err error) *FrameSource {
	s.end = err
	return s
}

// Hold makes NextFrame block after the last frame instead of ending.
func (s *FrameSource) Hold() *FrameSource {
	s.hold = true
	return s
}

func (s *FrameSource) NextFrame(ctx context.Context) (audio.Frame, error) {
	if err := ctx.Err(); err != nil {
		return audio.Frame{}, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return audio.Frame{}, io.ErrClosedPipe
	}
	if s.next < len(s.frames) {
		f := audio.Frame{Index: uint64(s.next), Samples: s.frames[s.next]}
		s.next++
		s.mu.Unlock()
		return f, nil
	}
	s.mu.Unlock()

	if s.hold {
		<-ctx.Done()
		return audio.Frame{}, ctx.Err()
	}
	return audio.Frame{}, s.end
}

func (s *FrameSource) SampleRate() int  { return s.rate }
func (s *FrameSource) FrameLength() int { return s.n }

func (s *FrameSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *FrameSource) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Recorder is a renderer that keeps every reading it is shown.
type Recorder struct {
	// Err is returned from every Display call.
	Err error

	mu       sync.Mutex
	readings []pipeline.Reading
	changed  chan struct{}
}

func NewRecorder() *Recorder {
	return &Recorder{changed: make(chan struct{}, 1)}
}

func (r *Recorder) Display(_ context.Context, reading pipeline.Reading) error {
	r.mu.Lock()
	r.readings = append(r.readings, reading)
	r.mu.Unlock()

	select {
	case r.changed <- struct{}{}:
	default:
	}
	return r.Err
}

// Readings returns a copy of everything displayed so far.
func (r *Recorder) Readings() []pipeline.Reading {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]pipeline.Reading(nil), r.readings...)
}

// WaitFor blocks until at least n readings were displayed or ctx ends.
func (r *Recorder) WaitFor(ctx context.Context, n int) error {
	for {
		r.mu.Lock()
		got := len(r.readings)
		r.mu.Unlock()
		if got >= n {
			return nil
		}

		select {
		case <-r.changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
