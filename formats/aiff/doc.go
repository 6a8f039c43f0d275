// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files with github.com/go-audio/aiff.
//
// Samples of 8, 16, 24 or 32 bits are normalized to float32 in [-1, 1):
//
//	f, _ := os.Open("loop.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//
// Input that cannot seek is read into memory first.
package aiff
