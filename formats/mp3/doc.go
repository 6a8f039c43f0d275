// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams with github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo, the layout go-mp3 produces
// even for mono files; pass the source through audio.Prepare to get the mono
// signal the analyzer expects.
package mp3
