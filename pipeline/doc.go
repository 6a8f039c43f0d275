// SPDX-License-Identifier: EPL-2.0

// Package pipeline turns audio frames into colors.
//
// A [Pipeline] chains the three stages of the model:
//
//	frame -> spectrum.Analyzer -> peak Hz -> wavelength.Map -> nm -> chroma.Convert -> Color
//
// The mapping method and the output [chroma.Representation] are fixed when
// the pipeline is built; switching either means building a new pipeline.
// A Pipeline holds no per-frame state, so one instance can serve any number
// of goroutines and every frame is processed independently of the ones
// before it.
//
//	p := pipeline.New(wavelength.Octave)
//	c, err := p.Process(frame, 44100) // normalized color
//
//	p8 := pipeline.New(wavelength.Simple, pipeline.WithRepresentation(chroma.EightBit))
//	c8 := p8.Color(261.63) // middle C as 8-bit RGB
package pipeline
