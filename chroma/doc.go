// SPDX-License-Identifier: EPL-2.0

// Package chroma converts visible-light wavelengths to RGB colors.
//
// The model splits 380-700 nm into six bands with linear ramps between the
// primaries, dims the channels near both edges of human vision, and applies a
// 0.8 gamma before quantizing to 8 bits:
//
//	c := chroma.Convert(380)  // {97 0 97 8bit}
//	n := c.As(chroma.Normalized) // {0.3804 0 0.3804 normalized}
//
// Wavelengths outside 380-700 nm, including the 0 nm sentinel produced by the
// octave mapping, convert to black.
//
// # Representation
//
// Every [Color] states whether its channels are normalized floats in [0, 1]
// or whole 8-bit values in [0, 255]. The model always quantizes to 8 bits
// first, so a Normalized color is exactly its EightBit counterpart divided by
// 255 and converting back and forth is lossless.
package chroma
