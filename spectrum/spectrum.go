// SPDX-License-Identifier: EPL-2.0

package spectrum

import "math"

// Spectrum is the frequency-domain view of one frame. All slices have the
// frame's length.
type Spectrum struct {
	Bins        []complex128
	Magnitudes  []float64
	Frequencies []float64
	SampleRate  float64
}

// Len returns the bin count.
func (s Spectrum) Len() int { return len(s.Bins) }

// PeakIndex returns the index of the first bin with the largest magnitude,
// or -1 for an empty spectrum.
func (s Spectrum) PeakIndex() int {
	if len(s.Magnitudes) == 0 {
		return -1
	}

	best := 0
	for k := 1; k < len(s.Magnitudes); k++ {
		if s.Magnitudes[k] > s.Magnitudes[best] {
			best = k
		}
	}
	return best
}

// Peak returns the absolute frequency of the strongest bin in Hz.
func (s Spectrum) Peak() float64 {
	k := s.PeakIndex()
	if k < 0 {
		return 0
	}
	return math.Abs(s.Frequencies[k])
}

// BinWidth returns the spacing between bin centers in Hz.
func (s Spectrum) BinWidth() float64 {
	if len(s.Bins) == 0 {
		return 0
	}
	return s.SampleRate / float64(len(s.Bins))
}

// Frequencies returns the center frequency of each of n FFT bins at
// sampleRate. The first (n+1)/2 entries are non-negative and ascending, the
// rest are negative and ascending towards zero.
func Frequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	half := (n - 1) / 2
	for k := range n {
		idx := k
		if k > half {
			idx = k - n
		}
		out[k] = float64(idx) * sampleRate / float64(n)
	}
	return out
}

// Sample is any PCM sample type a frame can hold.
type Sample interface {
	~int16 | ~int32 | ~float32 | ~float64
}

// ToFloat64 widens a frame of samples into dst, growing it if needed.
// The peak frequency does not depend on scale, so no normalization is done.
func ToFloat64[S Sample](dst []float64, src []S) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}
