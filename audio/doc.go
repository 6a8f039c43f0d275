// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample streams that feed the color pipeline.
//
// Everything that produces sound implements [Source], a pull-based stream of
// interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources come from the format decoders (see the formats/... packages,
// registered in a [Registry]), from a recorder process writing raw PCM
// ([RawSource]), or from a [Generator] for test tones.
//
// # Chaining
//
// [Resampler] changes the sample rate with cubic interpolation and
// [MonoMixer] averages channels into one. [Prepare] applies both as needed:
//
//	src, _ := registry.Open("song.mp3")
//	mono := audio.Prepare(src, 44100)
//
// # Frames
//
// The analysis side consumes fixed-length mono frames through [FrameSource].
// [Framer] cuts any Source into such frames:
//
//	f, _ := audio.NewFramer(mono, audio.DefaultFrameLength)
//	for {
//	    fr, err := f.NextFrame(ctx)
//	    if err == io.EOF {
//	        break
//	    }
//	    // fr.Samples holds 1024 float64 samples
//	}
//
// A Source reports the end of the stream with io.EOF, possibly together with
// the last samples. Any other error is a read failure.
package audio
