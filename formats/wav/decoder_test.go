// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/cliptrack/audio"
)

// wavBytes builds a WAV file by hand so that layouts the encoder never
// produces can be tested. extra, when set, is inserted as a JUNK chunk
// between fmt and data.
func wavBytes(formatTag, channels, sampleRate, bits int, extra, data []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := channels * bits / 8
	size := 4 + 24 + 8 + len(data)
	if extra != nil {
		size += 8 + len(extra)
	}

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(size))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(formatTag))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bits))

	if extra != nil {
		buf.WriteString("JUNK")
		binary.Write(buf, binary.LittleEndian, uint32(len(extra)))
		buf.Write(extra)
	}

	if data != nil {
		buf.WriteString("data")
		binary.Write(buf, binary.LittleEndian, uint32(len(data)))
		buf.Write(data)
	}

	return buf.Bytes()
}

func le16(samples ...int16) []byte {
	out := make([]byte, 0, 2*len(samples))
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}
	return out
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 3)
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
			name:     "16-bit mono",
			channels: 1, rate: 8000, bits: 16,
			data: le16(0, 16384, -16384, -32768),
			want: []float32{0, 0.5, -0.5, -1},
		},
		{
			name:     "16-bit stereo",
			channels: 2, rate: 48000, bits: 16,
			data: le16(8192, -8192, 0, 32767),
			want: []float32{0.25, -0.25, 0, 32767.0 / 32768},
		},
		{
			name:     "8-bit unsigned",
			channels: 1, rate: 11025, bits: 8,
			data: []byte{0, 64, 128, 192},
			want: []float32{-1, -0.5, 0, 0.5},
		},
		{
			name:     "24-bit",
			channels: 2, rate: 44100, bits: 24,
			data: []byte{0x00, 0x00, 0x40, 0x00, 0x00, 0xc0},
			want: []float32{0.5, -0.5},
		},
		{
			name:     "32-bit",
			channels: 1, rate: 96000, bits: 32,
			data: []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x80},
			want: []float32{0.5, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := wavBytes(formatPCM, tt.channels, tt.rate, tt.bits, nil, tt.data)
			src, err := Decoder{}.Decode(bytes.NewReader(file))
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

func TestDecoder_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	file := wavBytes(formatPCM, 1, 8000, 16, []byte("padding!"), le16(16384, 8192))
	src, err := Decoder{}.Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := readAll(t, src); !slices.Equal(got, []float32{0.5, 0.25}) {
		t.Errorf("samples = %v, want [0.5 0.25]", got)
	}
}

// A plain io.Reader is buffered in memory before decoding.
func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	file := wavBytes(formatPCM, 1, 8000, 16, nil, le16(-16384))
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(file)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := readAll(t, src); !slices.Equal(got, []float32{-0.5}) {
		t.Errorf("samples = %v, want [-0.5]", got)
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{"empty", nil, ErrNotWavFile},
		{"text", []byte("This is not a WAV file at all, just text."), ErrNotWavFile},
		{"truncated header", wavBytes(formatPCM, 1, 8000, 16, nil, nil)[:20], ErrNotWavFile},
		{"float encoding", wavBytes(3, 1, 8000, 32, nil, make([]byte, 8)), ErrUnsupportedEncoding},
		{"12-bit", wavBytes(formatPCM, 1, 8000, 12, nil, make([]byte, 4)), ErrUnsupportedBitDepth},
		{"no data chunk", wavBytes(formatPCM, 1, 8000, 16, nil, nil), ErrNoPCMData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(bytes.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if src != nil {
				t.Error("Decode() returned a source along with an error")
			}
		})
	}
}

func TestDecoder_BufSize(t *testing.T) {
	t.Parallel()

	file := wavBytes(formatPCM, 1, 8000, 16, nil, le16(1, 2))
	src, err := Decoder{}.Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want > 0", src.BufSize())
	}
}

func BenchmarkDecoder_ReadSamples(b *testing.B) {
	data := make([]int16, 48000)
	for i := range data {
		data[i] = int16(i)
	}
	file := wavBytes(formatPCM, 2, 48000, 16, nil, le16(data...))
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
