// SPDX-License-Identifier: EPL-2.0

package wavelength

import "math"

// Audible and visible range anchors shared by every strategy.
const (
	MinFrequency  = 20.0    // Hz
	MaxFrequency  = 20000.0 // Hz
	MinWavelength = 380.0   // nm, violet
	MaxWavelength = 700.0   // nm, red

	// OutOfRange is returned by [OctaveBand] for frequencies it cannot place.
	OutOfRange = 0.0

	// ConcertA anchors the [FourForty] strategy.
	ConcertA = 440.0

	octaves   = 10
	bandWidth = (MaxWavelength - MinWavelength) / octaves // 32 nm
)

// Map converts frequency f (Hz) to a wavelength (nm) using method m.
// Unknown methods fall back to [Simple].
func Map(f float64, m Method) float64 {
	switch m {
	case Octave:
		return OctaveBand(f)
	case FourForty:
		return FromConcertA(f)
	default:
		return Linear(f)
	}
}

// Linear maps [MinFrequency, MaxFrequency] onto [MaxWavelength, MinWavelength],
// so higher pitches give shorter wavelengths. Frequencies outside the audible
// range extrapolate along the same line.
func Linear(f float64) float64 {
	norm := (f - MinFrequency) / (MaxFrequency - MinFrequency)
	return MaxWavelength - norm*(MaxWavelength-MinWavelength)
}

// OctaveBand places f inside the 32 nm slice owned by its octave above 20 Hz.
// f below MinFrequency (including 0 and negatives), above MaxFrequency, or NaN
// returns [OutOfRange].
func OctaveBand(f float64) float64 {
	if math.IsNaN(f) || f < MinFrequency || f > MaxFrequency {
		return OutOfRange
	}

	octave := math.Floor(math.Log2(f / MinFrequency))
	base := MinFrequency * math.Exp2(octave)

	lo := MinWavelength + bandWidth*octave
	hi := MinWavelength + bandWidth*(octave+1)

	norm := (f - base) / base
	return lo + norm*(hi-lo)
}

// FromConcertA spreads [ConcertA, 2*ConcertA] over the visible range.
// Lower frequencies clamp to MinWavelength, higher ones to MaxWavelength.
func FromConcertA(f float64) float64 {
	switch {
	case f < ConcertA:
		return MinWavelength
	case f > 2*ConcertA:
		return MaxWavelength
	}

	norm := (f - ConcertA) / ConcertA
	return MinWavelength + norm*(MaxWavelength-MinWavelength)
}
