// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/colorfreq/audio"
)

// oggReader is the part of oggvorbis.Reader a source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	channels int
	done     bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 * s.channels }

// ReadSamples fills dst with whole frames. Read returns interleaved samples,
// so a short read is retried until dst is full or the stream ends.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	filled := 0
	for filled < len(dst) {
		n, err := s.dec.Read(dst[filled:])
		filled += n
		if errors.Is(err, io.EOF) {
			s.done = true
			return filled, io.EOF
		}
		if err != nil {
			return filled, fmt.Errorf("decode vorbis: %w", err)
		}
		if n == 0 {
			// A read that makes no progress ends the stream.
			s.done = true
			return filled, io.EOF
		}
	}
	return filled, nil
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct{}

var _ audio.Decoder = Decoder{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open ogg vorbis stream: %w", err)
	}
	return newSource(dec), nil
}

func newSource(dec oggReader) *source {
	return &source{dec: dec, channels: max(dec.Channels(), 1)}
}
