// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/colorfreq/audio"
)

// rate44100 is 44100 as an 80-bit IEEE extended float.
var rate44100 = []byte{0x40, 0x0e, 0xac, 0x44, 0, 0, 0, 0, 0, 0}

// buildAIFF assembles a minimal FORM/COMM/SSND file of 16-bit samples.
func buildAIFF(channels int, samples ...int16) []byte {
	var comm bytes.Buffer
	_ = binary.Write(&comm, binary.BigEndian, uint16(channels))
	_ = binary.Write(&comm, binary.BigEndian, uint32(len(samples)/channels))
	_ = binary.Write(&comm, binary.BigEndian, uint16(16))
	comm.Write(rate44100)

	var ssnd bytes.Buffer
	_ = binary.Write(&ssnd, binary.BigEndian, uint32(0)) // offset
	_ = binary.Write(&ssnd, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		_ = binary.Write(&ssnd, binary.BigEndian, s)
	}

	var body bytes.Buffer
	body.WriteString("AIFF")
	body.WriteString("COMM")
	_ = binary.Write(&body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	_ = binary.Write(&body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	var out bytes.Buffer
	out.WriteString("FORM")
	_ = binary.Write(&out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestDecoder_Decode16Bit(t *testing.T) {
	t.Parallel()

	data := buildAIFF(2, 0, 16384, -32768, -16384)
	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Fatalf("metadata = %d Hz, %d ch; want 44100 Hz, 2 ch", src.SampleRate(), src.Channels())
	}

	got, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	want := []float32{0, 0.5, -1, -0.5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_NonSeekable(t *testing.T) {
	t.Parallel()

	data := buildAIFF(1, 1, 2, 3)
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not AIFF data")},
		{"empty", nil},
		{"riff", []byte("RIFF\x24\x00\x00\x00WAVEfmt ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}
