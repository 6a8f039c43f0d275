// SPDX-License-Identifier: EPL-2.0

package colorfreq

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/chroma"
	"github.com/ik5/colorfreq/pipeline"
	"github.com/ik5/colorfreq/wavelength"
)

// Color maps a frequency in Hz straight to a normalized color.
func Color(frequency float64, method wavelength.Method) chroma.Color {
	return pipeline.New(method).Color(frequency)
}

// SourceColors reads src to the end and returns one reading per frame of
// frameLength samples. The source is resampled to sampleRate when the rates
// differ and downmixed to mono; a non-positive sampleRate keeps the source
// rate. A short final frame is padded with silence. src is not closed.
func SourceColors(src audio.Source, sampleRate, frameLength int, method wavelength.Method, opts ...pipeline.Option) ([]pipeline.Reading, error) {
	framer, err := audio.NewFramer(audio.Prepare(src, sampleRate), frameLength)
	if err != nil {
		return nil, err
	}

	p := pipeline.New(method, opts...)
	rate := float64(framer.SampleRate())
	ctx := context.Background()

	var readings []pipeline.Reading
	for {
		frame, err := framer.NextFrame(ctx)
		if errors.Is(err, io.EOF) {
			return readings, nil
		}
		if err != nil {
			return readings, err
		}

		r, err := p.Trace(frame.Samples, rate)
		if err != nil {
			return readings, fmt.Errorf("frame %d: %w", frame.Index, err)
		}
		readings = append(readings, r)
	}
}
