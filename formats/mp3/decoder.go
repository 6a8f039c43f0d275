// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/internal/pcm"
)

// go-mp3 always emits interleaved stereo s16le.
const channels = 2

// pcmReader is the part of gomp3.Decoder a source needs.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  pcmReader
	buf  []byte
	done bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	want := 2 * len(dst)
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.dec, s.buf)
	samples := n / 2
	samples -= samples % channels
	for i := range samples {
		dst[i] = pcm.FromInt16(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("decode mp3: %w", err)
	}
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

var _ audio.Decoder = Decoder{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("open mp3 stream: %w", err)
	}
	return newSource(dec), nil
}

func newSource(dec pcmReader) *source {
	return &source{dec: dec, buf: make([]byte, 8192)}
}
