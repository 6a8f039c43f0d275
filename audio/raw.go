// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/colorfreq/internal/pcm"
)

// RawSource reads headerless signed 16-bit little-endian PCM, the format
// recorders such as arecord and parec emit with -f S16_LE / --format=s16le.
type RawSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

var _ Source = (*RawSource)(nil)

// NewRawSource reads interleaved s16le samples from r. If r is an io.Closer
// it is closed by Close.
func NewRawSource(r io.Reader, sampleRate, channels int) *RawSource {
	return &RawSource{
		r:          r,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
		buf:        make([]byte, 8192),
	}
}

func (s *RawSource) SampleRate() int { return s.sampleRate }
func (s *RawSource) Channels() int   { return s.channels }
func (s *RawSource) BufSize() int    { return cap(s.buf) / 2 }

func (s *RawSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadSamples blocks until dst is full or the stream ends. A trailing odd
// byte is dropped.
func (s *RawSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	want := 2 * len(dst)
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	n, err := io.ReadFull(s.r, s.buf[:want])

	samples := n / 2
	for i := range samples {
		dst[i] = pcm.FromInt16(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("read raw pcm: %w", err)
	}
}
