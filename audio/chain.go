// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

// Prepare adapts src to mono at sampleRate, resampling only when the rates
// differ. A non-positive sampleRate keeps the source rate.
func Prepare(src Source, sampleRate int) Source {
	if sampleRate > 0 && src.SampleRate() != sampleRate {
		src = NewResampler(src, sampleRate)
	}
	if src.Channels() > 1 {
		src = NewMonoMixer(src)
	}
	return src
}

// ReadAll drains src and returns every sample it produced.
func ReadAll(src Source) ([]float32, error) {
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	size -= size % max(src.Channels(), 1)
	if size == 0 {
		size = max(src.Channels(), 1)
	}

	var out []float32
	buf := make([]float32, size)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
