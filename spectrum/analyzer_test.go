// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"github.com/mjibson/go-dsp/fft"
)

func sine(n int, freq, sampleRate, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

func TestAnalyzer_PeakOfConcertA(t *testing.T) {
	t.Parallel()

	const (
		sampleRate = 44100.0
		n          = 1024
	)
	a := NewAnalyzer()

	peak, err := a.Peak(sine(n, 440, sampleRate, 1), sampleRate)
	if err != nil {
		t.Fatalf("Peak() error = %v", err)
	}

	binWidth := sampleRate / n
	if math.Abs(peak-440) > binWidth {
		t.Errorf("Peak() = %v, want within %v of 440", peak, binWidth)
	}
	// Bin 10 is the nearest bin center below 440 Hz.
	if want := 10 * binWidth; peak != want {
		t.Errorf("Peak() = %v, want bin 10 at %v", peak, want)
	}
}

func TestAnalyzer_SilentFrame(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	for _, n := range []int{1, 2, 3, 7, 1024} {
		peak, err := a.Peak(make([]float64, n), 44100)
		if err != nil {
			t.Fatalf("Peak(silent %d) error = %v", n, err)
		}
		if peak != 0 {
			t.Errorf("Peak(silent %d) = %v, want 0", n, peak)
		}
	}
}

func TestAnalyzer_DegenerateLengths(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	for n := 1; n <= 9; n++ {
		frame := make([]float64, n)
		for i := range frame {
			frame[i] = float64(i%3) - 1
		}

		s, err := a.Analyze(frame, 8000)
		if err != nil {
			t.Fatalf("Analyze(len %d) error = %v", n, err)
		}
		if s.Len() != n || len(s.Magnitudes) != n || len(s.Frequencies) != n {
			t.Fatalf("Analyze(len %d) returned mismatched lengths %d/%d/%d",
				n, s.Len(), len(s.Magnitudes), len(s.Frequencies))
		}

		peak := s.Peak()
		if peak < 0 || peak > 4000 || math.IsNaN(peak) {
			t.Errorf("Peak(len %d) = %v, want within [0, Nyquist]", n, peak)
		}
	}
}

func TestAnalyzer_NonPowerOfTwo(t *testing.T) {
	t.Parallel()

	// 1000 samples at 8 kHz gives 8 Hz bins, so 1 kHz sits on bin 125.
	a := NewAnalyzer()
	peak, err := a.Peak(sine(1000, 1000, 8000, 0.5), 8000)
	if err != nil {
		t.Fatalf("Peak() error = %v", err)
	}
	if math.Abs(peak-1000) > 1e-9 {
		t.Errorf("Peak() = %v, want 1000", peak)
	}
}

func TestAnalyzer_NyquistIsPositive(t *testing.T) {
	t.Parallel()

	// Alternating samples put all energy in the bin at -R/2.
	frame := []float64{1, -1, 1, -1, 1, -1, 1, -1}
	a := NewAnalyzer()

	s, err := a.Analyze(frame, 8000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if k := s.PeakIndex(); k != 4 {
		t.Fatalf("PeakIndex() = %d, want 4", k)
	}
	if s.Frequencies[4] != -4000 {
		t.Errorf("Frequencies[4] = %v, want -4000", s.Frequencies[4])
	}
	if peak := s.Peak(); peak != 4000 {
		t.Errorf("Peak() = %v, want 4000", peak)
	}
}

func TestAnalyzer_BackendsAgree(t *testing.T) {
	t.Parallel()

	frame := sine(64, 3000, 16000, 0.8)
	for i := range frame {
		frame[i] += 0.1 * math.Cos(float64(i)*0.37)
	}

	s, err := NewAnalyzer().Analyze(frame, 16000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	ref := fft.FFTReal(frame)
	for k := range ref {
		if cmplx.Abs(s.Bins[k]-ref[k]) > 1e-9 {
			t.Fatalf("bin %d: planned %v, reference %v", k, s.Bins[k], ref[k])
		}
		if math.Abs(s.Magnitudes[k]-cmplx.Abs(ref[k])) > 1e-9 {
			t.Fatalf("magnitude %d: got %v, want %v", k, s.Magnitudes[k], cmplx.Abs(ref[k]))
		}
	}
}

func TestAnalyzer_WithWindow(t *testing.T) {
	t.Parallel()

	const sampleRate = 44100.0
	frame := sine(1024, 440, sampleRate, 1)

	for _, w := range []Window{WindowHann, WindowHamming, WindowBlackman} {
		t.Run(w.String(), func(t *testing.T) {
			t.Parallel()

			a := NewAnalyzer(WithWindow(w))
			if a.Window() != w {
				t.Fatalf("Window() = %v, want %v", a.Window(), w)
			}

			peak, err := a.Peak(frame, sampleRate)
			if err != nil {
				t.Fatalf("Peak() error = %v", err)
			}
			if math.Abs(peak-440) > sampleRate/1024 {
				t.Errorf("Peak() = %v, want within one bin of 440", peak)
			}
		})
	}
}

func TestAnalyzer_WindowLeavesFrameUntouched(t *testing.T) {
	t.Parallel()

	frame := sine(256, 1000, 8000, 1)
	orig := append([]float64(nil), frame...)

	if _, err := NewAnalyzer(WithWindow(WindowHann)).Analyze(frame, 8000); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	for i := range frame {
		if frame[i] != orig[i] {
			t.Fatalf("frame[%d] modified: %v -> %v", i, orig[i], frame[i])
		}
	}
}

func TestAnalyzer_Errors(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	tests := []struct {
		name       string
		frame      []float64
		sampleRate float64
		want       error
	}{
		{"empty frame", nil, 44100, ErrEmptyFrame},
		{"zero rate", []float64{1}, 0, ErrInvalidSampleRate},
		{"negative rate", []float64{1}, -8000, ErrInvalidSampleRate},
		{"NaN rate", []float64{1}, math.NaN(), ErrInvalidSampleRate},
		{"infinite rate", []float64{1}, math.Inf(1), ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := a.Peak(tt.frame, tt.sampleRate); !errors.Is(err, tt.want) {
				t.Errorf("Peak() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAnalyzer_ConcurrentUse(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	frame := sine(512, 2000, 16000, 1)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			peak, err := a.Peak(frame, 16000)
			if err != nil {
				errs <- err
				return
			}
			if peak != 2000 {
				errs <- errors.New("unexpected peak")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func BenchmarkAnalyzer_Peak1024(b *testing.B) {
	a := NewAnalyzer()
	frame := sine(1024, 440, 44100, 1)

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		_, _ = a.Peak(frame, 44100)
	}
}
