// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/fft"
)

// Analyzer computes spectra and peak frequencies of audio frames.
// It is safe for concurrent use; FFT plans and window coefficients are built
// once per frame length and reused.
type Analyzer struct {
	window Window
	logger *slog.Logger

	mu     sync.Mutex
	plans  map[int]*plan
	coeffs map[int][]float64
}

// plan serializes access to one algo-fft plan.
type plan struct {
	mu sync.Mutex
	p  *algofft.Plan[complex128]
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWindow applies w to every frame before the transform.
func WithWindow(w Window) Option {
	return func(a *Analyzer) { a.window = w }
}

// WithLogger sets the logger used for backend diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer returns an Analyzer with a rectangular window.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger: slog.Default(),
		plans:  make(map[int]*plan),
		coeffs: make(map[int][]float64),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Window returns the analysis window in use.
func (a *Analyzer) Window() Window { return a.window }

// Analyze transforms frame, sampled at sampleRate Hz, into a Spectrum.
// Any frame length of at least one sample is accepted.
func (a *Analyzer) Analyze(frame []float64, sampleRate float64) (Spectrum, error) {
	if len(frame) == 0 {
		return Spectrum{}, ErrEmptyFrame
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Spectrum{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	n := len(frame)
	bins := a.transform(a.windowed(frame))

	re := make([]float64, n)
	im := make([]float64, n)
	for k, c := range bins {
		re[k] = real(c)
		im[k] = imag(c)
	}
	mags := make([]float64, n)
	vecmath.Magnitude(mags, re, im)

	return Spectrum{
		Bins:        bins,
		Magnitudes:  mags,
		Frequencies: Frequencies(n, sampleRate),
		SampleRate:  sampleRate,
	}, nil
}

// Peak returns the dominant frequency of frame in Hz. The result is never
// negative and is 0 for a silent frame.
func (a *Analyzer) Peak(frame []float64, sampleRate float64) (float64, error) {
	s, err := a.Analyze(frame, sampleRate)
	if err != nil {
		return 0, err
	}
	return s.Peak(), nil
}

func (a *Analyzer) windowed(frame []float64) []float64 {
	gen := a.window.coefficients()
	if gen == nil || len(frame) < 2 {
		return frame
	}

	n := len(frame)
	a.mu.Lock()
	c, ok := a.coeffs[n]
	if !ok {
		c = gen(n)
		a.coeffs[n] = c
	}
	a.mu.Unlock()

	out := make([]float64, n)
	vecmath.MulBlock(out, frame, c)
	return out
}

func (a *Analyzer) transform(x []float64) []complex128 {
	if p := a.plan(len(x)); p != nil {
		src := make([]complex128, len(x))
		for i, v := range x {
			src[i] = complex(v, 0)
		}
		dst := make([]complex128, len(x))

		p.mu.Lock()
		err := p.p.Forward(dst, src)
		p.mu.Unlock()
		if err == nil {
			return dst
		}
		a.logger.Debug("planned fft failed, using fallback", "size", len(x), "err", err)
	}

	return fft.FFTReal(x)
}

// plan returns the cached algo-fft plan for n, or nil when n is not a power
// of two or no plan could be built.
func (a *Analyzer) plan(n int) *plan {
	if n < 2 || n&(n-1) != 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if p, ok := a.plans[n]; ok {
		return p
	}

	fp, err := algofft.NewPlan64(n)
	if err != nil {
		a.logger.Debug("fft plan unavailable, using fallback", "size", n, "err", err)
		a.plans[n] = nil
		return nil
	}

	p := &plan{p: fp}
	a.plans[n] = p
	return p
}
