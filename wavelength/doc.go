// SPDX-License-Identifier: EPL-2.0

// Package wavelength maps audio frequencies onto the visible spectrum.
//
// Three strategies are available, selected with a [Method]:
//
//   - [Simple] interpolates linearly between 20 Hz (700 nm, red) and
//     20 kHz (380 nm, violet). Input outside the audible band is not
//     rejected; it extrapolates past the visible range.
//   - [Octave] gives each of the ten octaves above 20 Hz a 32 nm slice of
//     the visible range. Frequencies outside [20, 20000] Hz return the
//     sentinel [OutOfRange] (0 nm).
//   - [FourForty] stretches the octave from concert A (440 Hz) to 880 Hz
//     across the whole visible range and clamps everything else to the
//     nearest edge.
//
// All strategies are pure functions of their input:
//
//	nm := wavelength.Map(440, wavelength.Octave) // 520
//
// Methods are chosen once, usually from user input:
//
//	m, err := wavelength.ParseMethod("octave")
//	if errors.Is(err, wavelength.ErrUnknownMethod) {
//	    m = wavelength.Simple
//	}
package wavelength
