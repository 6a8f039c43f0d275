// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// [Decoder] accepts 16, 24 and 32-bit PCM in any channel layout and sample
// rate and yields an audio.Source of normalized float32 samples:
//
//	f, _ := os.Open("clip.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Input that cannot seek is buffered in memory first.
//
// [Encode] writes any audio.Source as 16 or 24-bit PCM, which is how the
// colorfreq tone command produces its test files:
//
//	out, _ := os.Create("a4.wav")
//	frames, err := wav.Encode(out, audio.NewTone(44100, 1, 44100, 440, 0.5), 16)
//
// Errors are [ErrNotWavFile], [ErrUnsupportedEncoding] (floating point or
// compressed data) and [ErrUnsupportedBitDepth].
package wav
