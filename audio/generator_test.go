// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestGenerator_Finite(t *testing.T) {
	t.Parallel()

	g := NewGenerator(8000, 2, 3, func(frame, ch int) float32 { return float32(10*frame + ch) })

	buf := make([]float32, 4)
	n, err := g.ReadSamples(buf)
	if n != 4 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v", n, err)
	}
	if buf[0] != 0 || buf[1] != 1 || buf[2] != 10 || buf[3] != 11 {
		t.Errorf("samples = %v", buf)
	}

	n, err = g.ReadSamples(buf)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() = %d, %v; want 2, io.EOF", n, err)
	}
	if n, err := g.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v", n, err)
	}

	g.Reset()
	if n, _ := g.ReadSamples(buf); n != 4 {
		t.Errorf("ReadSamples() after Reset = %d, want 4", n)
	}
}

func TestGenerator_Endless(t *testing.T) {
	t.Parallel()

	g := NewSilence(8000, 1, -1)
	buf := make([]float32, 1024)
	for range 100 {
		if n, err := g.ReadSamples(buf); n != len(buf) || err != nil {
			t.Fatalf("ReadSamples() = %d, %v", n, err)
		}
	}
}

func TestNewTone(t *testing.T) {
	t.Parallel()

	g := NewTone(8000, 1, 8, 2000, 0.5)
	samples, err := ReadAll(g)
	if err != nil {
		t.Fatal(err)
	}

	// 2 kHz at 8 kHz is a quarter turn per sample.
	want := []float64{0, 0.5, 0, -0.5, 0, 0.5, 0, -0.5}
	for i, w := range want {
		if math.Abs(float64(samples[i])-w) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, samples[i], w)
		}
	}
}
