// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/internal/pcm"
)

// Encode drains src into w as integer PCM at bitDepth (16 or 24) and returns
// the number of frames written. The header is finalized on return, so w must
// be seekable.
func Encode(w io.WriteSeeker, src audio.Source, bitDepth int) (int, error) {
	if bitDepth != 16 && bitDepth != 24 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := max(src.Channels(), 1)
	enc := gowav.NewEncoder(w, src.SampleRate(), bitDepth, channels, formatPCM)

	size := src.BufSize()
	size -= size % channels
	if size <= 0 {
		size = 4096 * channels
	}

	samples := make([]float32, size)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		Data:           make([]int, size),
		SourceBitDepth: bitDepth,
	}

	total := 0
	for {
		n, err := src.ReadSamples(samples)
		if n > 0 {
			buf.Data = buf.Data[:n]
			for i, v := range samples[:n] {
				buf.Data[i] = quantize(v, bitDepth)
			}
			if werr := enc.Write(buf); werr != nil {
				return total, fmt.Errorf("write wav samples: %w", werr)
			}
			total += n / channels
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read source: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return total, fmt.Errorf("finalize wav: %w", err)
	}
	return total, nil
}

// WriteWAV16 writes mono 16-bit PCM samples at sampleRate.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

func quantize(v float32, bitDepth int) int {
	if bitDepth == 16 {
		return int(pcm.ToInt16(v))
	}

	top := float64(pcm.FullScale(bitDepth))
	x := math.Max(-1, math.Min(1, float64(v)))
	if x < 0 {
		return int(x * top)
	}
	return int(x * (top - 1))
}
