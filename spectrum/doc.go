// SPDX-License-Identifier: EPL-2.0

// Package spectrum finds the dominant frequency of a mono audio frame.
//
// An [Analyzer] takes the discrete Fourier transform of a frame, computes the
// magnitude of every bin and reports the frequency of the strongest one:
//
//	a := spectrum.NewAnalyzer()
//	peak, err := a.Peak(frame, 44100)
//
// Bin frequencies follow the usual FFT convention: bin k of an N-point
// transform sits at k*R/N for the first half of the bins and at (k-N)*R/N for
// the second half, so the bins cover [-R/2, R/2). [Spectrum.Peak] returns the
// absolute value of that frequency; ties between equal magnitudes go to the
// lowest bin index. A silent frame peaks at bin 0, i.e. 0 Hz.
//
// # Transform Backends
//
// Power-of-two frame lengths run through a cached github.com/MeKo-Christian/algo-fft
// plan. Every other length, including the degenerate one-sample frame, goes
// through github.com/mjibson/go-dsp/fft, which handles arbitrary sizes with
// Bluestein's algorithm. Both produce the same unnormalized forward transform.
//
// # Windows
//
// By default frames are analyzed as-is (rectangular window). [WithWindow]
// applies one of the go-dsp windows to a copy of each frame first, which
// reduces leakage between neighbouring bins at the cost of a wider main lobe.
package spectrum
