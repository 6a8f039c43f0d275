// SPDX-License-Identifier: EPL-2.0

// Package colorfreq turns sound into color.
//
// Every frame of audio is reduced to its dominant frequency, the frequency is
// mapped onto the visible spectrum (380 to 700 nm) and the wavelength is
// converted to a gamma-corrected RGB color.
//
// # Mapping methods
//
// Three mappings are available in the wavelength package:
//   - Simple spreads 20 Hz to 20 kHz linearly over the visible range
//   - Octave folds each frequency into one of ten audible octaves and places
//     it inside that octave's band of wavelengths
//   - FourForty anchors concert A (440 Hz) at 380 nm and clamps the range
//
// # Quick Start
//
// Map a single frequency:
//
//	c := colorfreq.Color(440, wavelength.Octave)
//	fmt.Println(c.Hex())
//
// Map a decoded file, one reading per frame:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	readings, _ := colorfreq.SourceColors(src, 44100, 1024, wavelength.Simple)
//
// # Building blocks
//
// The spectrum package finds peak frequencies, chroma converts wavelengths to
// colors and pipeline ties both together behind one stateless value. The audio
// package and the formats subpackages decode, resample, downmix and cut audio
// into frames. Renderers for terminals, logs and websocket viewers live in
// render.
package colorfreq
