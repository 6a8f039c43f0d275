// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type fakeReader struct {
	samples []int
	offset  int
	err     error
}

func (f *fakeReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 8000, NumChannels: 1}
}

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.samples[f.offset:])
	f.offset += n
	return n, nil
}

func TestSource_Normalizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		depth    int
		samples  []int
		expected []float32
	}{
		{"8-bit", 8, []int{-128, 0, 64}, []float32{-1, 0, 0.5}},
		{"16-bit", 16, []int{-32768, 16384, 0}, []float32{-1, 0.5, 0}},
		{"24-bit", 24, []int{-8388608, 4194304}, []float32{-1, 0.5}},
		{"32-bit", 32, []int{-2147483648, 1073741824}, []float32{-1, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := NewSource(&fakeReader{samples: tt.samples}, 8000, 1, tt.depth)
			dst := make([]float32, 8)
			n, err := src.ReadSamples(dst)
			if n != len(tt.expected) || !errors.Is(err, io.EOF) {
				t.Fatalf("ReadSamples() = %d, %v; want %d, io.EOF", n, err, len(tt.expected))
			}
			for i, want := range tt.expected {
				if dst[i] != want {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
				}
			}

			if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
				t.Errorf("ReadSamples() after end = %d, %v", n, err)
			}
		})
	}
}

func TestSource_FullReadIsNotEOF(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{samples: make([]int, 10)}, 8000, 2, 16)
	if src.Channels() != 2 || src.SampleRate() != 8000 || src.BitDepth() != 16 {
		t.Fatal("metadata mismatch")
	}

	n, err := src.ReadSamples(make([]float32, 4))
	if n != 4 || err != nil {
		t.Errorf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}
	if src.BufSize() != 4 {
		t.Errorf("BufSize() = %d, want 4", src.BufSize())
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{err: io.ErrUnexpectedEOF}, 8000, 1, 16)
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	rs, err := Seekable(br)
	if err != nil || rs != io.ReadSeeker(br) {
		t.Errorf("Seekable(bytes.Reader) = %v, %v; want the same reader", rs, err)
	}

	rs, err = Seekable(io.MultiReader(strings.NewReader("ab"), strings.NewReader("cd")))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rs.Seek(2, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "cd" {
		t.Errorf("after seek read %q, want %q", rest, "cd")
	}
}
