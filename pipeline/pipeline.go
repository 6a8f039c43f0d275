// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"

	"github.com/ik5/colorfreq/chroma"
	"github.com/ik5/colorfreq/spectrum"
	"github.com/ik5/colorfreq/wavelength"
)

// Reading is the outcome of one frame: the peak frequency and every value
// derived from it.
type Reading struct {
	Frequency  float64 // Hz
	Wavelength float64 // nm, 0 when out of range
	Color      chroma.Color
}

// Pipeline maps frames or frequencies to colors with a fixed method.
type Pipeline struct {
	method   wavelength.Method
	rep      chroma.Representation
	analyzer *spectrum.Analyzer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRepresentation sets the representation of emitted colors.
// The default is chroma.Normalized.
func WithRepresentation(rep chroma.Representation) Option {
	return func(p *Pipeline) { p.rep = rep }
}

// WithAnalyzer replaces the default rectangular-window analyzer.
func WithAnalyzer(a *spectrum.Analyzer) Option {
	return func(p *Pipeline) {
		if a != nil {
			p.analyzer = a
		}
	}
}

// New builds a pipeline for method. An invalid method is treated as Simple.
func New(method wavelength.Method, opts ...Option) *Pipeline {
	if !method.Valid() {
		method = wavelength.Simple
	}

	p := &Pipeline{
		method: method,
		rep:    chroma.Normalized,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.analyzer == nil {
		p.analyzer = spectrum.NewAnalyzer()
	}
	return p
}

// Method returns the mapping method.
func (p *Pipeline) Method() wavelength.Method { return p.method }

// Representation returns the representation of emitted colors.
func (p *Pipeline) Representation() chroma.Representation { return p.rep }

// Process returns the color of frame's dominant frequency.
// It fails only for an empty frame or an invalid sample rate.
func (p *Pipeline) Process(frame []float64, sampleRate float64) (chroma.Color, error) {
	r, err := p.Trace(frame, sampleRate)
	if err != nil {
		return chroma.Black(p.rep), err
	}
	return r.Color, nil
}

// Trace is Process but keeps the intermediate values.
func (p *Pipeline) Trace(frame []float64, sampleRate float64) (Reading, error) {
	peak, err := p.analyzer.Peak(frame, sampleRate)
	if err != nil {
		return Reading{Color: chroma.Black(p.rep)}, fmt.Errorf("analyze frame: %w", err)
	}
	return p.Reading(peak), nil
}

// Color maps a frequency straight to a color, skipping analysis.
func (p *Pipeline) Color(frequency float64) chroma.Color {
	return p.Reading(frequency).Color
}

// Reading maps a frequency to its wavelength and color.
func (p *Pipeline) Reading(frequency float64) Reading {
	nm := wavelength.Map(frequency, p.method)
	return Reading{
		Frequency:  frequency,
		Wavelength: nm,
		Color:      chroma.ConvertAs(nm, p.rep),
	}
}
