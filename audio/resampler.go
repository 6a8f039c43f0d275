// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/colorfreq/internal/pcm"
)

// Resampler converts a Source to another sample rate with Catmull-Rom
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass smooths the input first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[1] and window[2] bracket the output position; window[0] and
	// window[3] are their outer neighbours. Invalid slots lie past an edge.
	window [4][]float32
	valid  [4]bool
	primed bool

	pos    float64
	srcBuf []float32
	eof    bool

	lowpass bool
	seeded  bool
	alpha   float32
	state   []float32
}

var _ Source = (*Resampler)(nil)

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		srcBuf:   make([]float32, channels),
		lowpass:  step > 1,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }
func (r *Resampler) Close() error    { return r.src.Close() }

// readFrame pulls one source frame into dst. It reports false at the end of
// the stream.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	if errors.Is(err, io.EOF) {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("resample: %w", err)
	}
	if n < r.channels {
		r.eof = true
		return false, nil
	}

	copy(dst, r.srcBuf)
	if r.lowpass {
		if !r.seeded {
			copy(r.state, dst)
			r.seeded = true
		}
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}
	return true, nil
}

// prime loads the first frames so that window[1] holds source frame 0.
func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < len(r.window); i++ {
		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		r.valid[i] = true
	}
	if !r.valid[1] {
		return io.EOF
	}
	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.valid[:], r.valid[1:])
	r.window[3] = first

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	r.valid[3] = ok
	if !r.valid[1] {
		return io.EOF
	}
	return nil
}

// sample returns window slot i for channel c, repeating the nearest valid
// slot at the stream edges.
func (r *Resampler) sample(i, c int) float32 {
	switch {
	case r.valid[i]:
		return r.window[i][c]
	case i == 0:
		return r.window[1][c]
	case i == 3 && r.valid[2]:
		return r.window[2][c]
	default:
		return r.window[1][c]
	}
}

// ReadSamples writes resampled interleaved samples; len(dst) must be a
// multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.valid[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = pcm.Cubic(r.sample(0, c), r.sample(1, c), r.sample(2, c), r.sample(3, c), x)
		}

		written++
		r.pos += r.step
	}
	return written * r.channels, nil
}
