// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/bits"
	"slices"
	"testing"

	"github.com/ik5/cliptrack/audio"
)

// extended encodes an integer sample rate as the 80-bit IEEE extended float
// used by the COMM chunk.
func extended(rate int) []byte {
	e := bits.Len(uint(rate)) - 1
	out := binary.BigEndian.AppendUint16(nil, uint16(16383+e))
	return binary.BigEndian.AppendUint64(out, uint64(rate)<<(63-e))
}

func aiffBytes(channels, sampleRate, bitDepth int, data []byte) []byte {
	frames := len(data) / (channels * bitDepth / 8)

	buf := new(bytes.Buffer)
	buf.WriteString("FORM")
	binary.Write(buf, binary.BigEndian, uint32(4+8+18+8+8+len(data)))
	buf.WriteString("AIFF")

	buf.WriteString("COMM")
	binary.Write(buf, binary.BigEndian, uint32(18))
	binary.Write(buf, binary.BigEndian, uint16(channels))
	binary.Write(buf, binary.BigEndian, uint32(frames))
	binary.Write(buf, binary.BigEndian, uint16(bitDepth))
	buf.Write(extended(sampleRate))

	buf.WriteString("SSND")
	binary.Write(buf, binary.BigEndian, uint32(8+len(data)))
	binary.Write(buf, binary.BigEndian, uint32(0)) // offset
	binary.Write(buf, binary.BigEndian, uint32(0)) // block size
	buf.Write(data)

	return buf.Bytes()
}

func be16(samples ...int16) []byte {
	out := make([]byte, 0, 2*len(samples))
	for _, s := range samples {
		out = binary.BigEndian.AppendUint16(out, uint16(s))
	}
	return out
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 4)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestExtended(t *testing.T) {
	t.Parallel()

	// 44100 Hz as stored by every AIFF writer.
	want := []byte{0x40, 0x0e, 0xac, 0x44, 0, 0, 0, 0, 0, 0}
	if got := extended(44100); !bytes.Equal(got, want) {
		t.Errorf("extended(44100) = % x, want % x", got, want)
	}
}

func TestDecoder_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		rate     int
		bits     int
		data     []byte
		want     []float32
	}{
		{
			name:     "16-bit stereo",
			channels: 2, rate: 44100, bits: 16,
			data: be16(16384, -16384, 0, -32768, 8192, 32767),
			want: []float32{0.5, -0.5, 0, -1, 0.25, 32767.0 / 32768},
		},
		{
			name:     "16-bit mono",
			channels: 1, rate: 48000, bits: 16,
			data: be16(-8192, 8192),
			want: []float32{-0.25, 0.25},
		},
		{
			name:     "24-bit mono",
			channels: 1, rate: 96000, bits: 24,
			data: []byte{0x40, 0x00, 0x00, 0xc0, 0x00, 0x00},
			want: []float32{0.5, -0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(bytes.NewReader(aiffBytes(tt.channels, tt.rate, tt.bits, tt.data)))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer src.Close()

			if src.SampleRate() != tt.rate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.rate)
			}
			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}
			if got := readAll(t, src); !slices.Equal(got, tt.want) {
				t.Errorf("samples = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	file := aiffBytes(1, 8000, 16, be16(16384, 16384))
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(file)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := readAll(t, src); !slices.Equal(got, []float32{0.5, 0.5}) {
		t.Errorf("samples = %v, want [0.5 0.5]", got)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not AIFF data")},
		{"riff header", []byte("RIFF\x24\x00\x00\x00WAVEfmt ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(bytes.NewReader(tt.input))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want %v", err, ErrNotAiffFile)
			}
			if src != nil {
				t.Error("Decode() returned a source along with an error")
			}
		})
	}
}

func BenchmarkDecoder_ReadSamples(b *testing.B) {
	data := make([]int16, 2*44100)
	for i := range data {
		data[i] = int16(i * 7)
	}
	file := aiffBytes(2, 44100, 16, be16(data...))
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src, err := Decoder{}.Decode(bytes.NewReader(file))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
