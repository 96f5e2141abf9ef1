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

// mockReader serves samples the way go-audio's decoders do. eofErr is what
// it returns once the data runs out: wav returns nil, aiff returns io.EOF.
type mockReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
	eofErr  error
	failErr error
}

func (m *mockReader) Format() *goaudio.Format { return m.format }

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	if m.offset >= len(m.samples) {
		return 0, m.eofErr
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func stereo(rate int) *goaudio.Format {
	return &goaudio.Format{SampleRate: rate, NumChannels: 2}
}

func TestNewSource_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   *goaudio.Format
		bitDepth int
		wantErr  error
	}{
		{"16 bit", stereo(44100), 16, nil},
		{"24 bit", stereo(44100), 24, nil},
		{"12 bit", stereo(44100), 12, ErrUnsupportedBitDepth},
		{"nil format", nil, 16, ErrInvalidFormat},
		{"no channels", &goaudio.Format{SampleRate: 44100}, 16, ErrInvalidFormat},
		{"no rate", &goaudio.Format{NumChannels: 2}, 16, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSource(&mockReader{format: tt.format}, tt.bitDepth, false)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewSource() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSource_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		unsigned bool
		samples  []int
		want     []float32
	}{
		{"16 bit", 16, false, []int{0, 16384, -32768, 32767}, []float32{0, 0.5, -1, 32767.0 / 32768}},
		{"24 bit", 24, false, []int{4194304, -8388608}, []float32{0.5, -1}},
		{"8 bit unsigned", 8, true, []int{128, 192, 0}, []float32{0, 0.5, -1}},
		{"8 bit signed", 8, false, []int{64, -128}, []float32{0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := NewSource(&mockReader{format: stereo(8000), samples: tt.samples}, tt.bitDepth, tt.unsigned)
			if err != nil {
				t.Fatalf("NewSource() error = %v", err)
			}

			dst := make([]float32, len(tt.samples))
			n, err := src.ReadSamples(dst)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != len(tt.want) {
				t.Fatalf("ReadSamples() n = %d, want %d", n, len(tt.want))
			}
			for i := range tt.want {
				if dst[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, dst[i], tt.want[i])
				}
			}
		})
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	for _, eofErr := range []error{nil, io.EOF} {
		src, err := NewSource(&mockReader{format: stereo(8000), samples: []int{1, 2, 3}, eofErr: eofErr}, 16, false)
		if err != nil {
			t.Fatalf("NewSource() error = %v", err)
		}

		dst := make([]float32, 8)
		if n, err := src.ReadSamples(dst); n != 3 || err != nil {
			t.Fatalf("first ReadSamples() = %d, %v, want 3, nil", n, err)
		}
		if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
			t.Errorf("ReadSamples() at end (decoder eof %v) = %d, %v, want 0, EOF", eofErr, n, err)
		}
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src, err := NewSource(&mockReader{format: stereo(8000), failErr: boom}, 16, false)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_BufSizeTracksReads(t *testing.T) {
	t.Parallel()

	src, err := NewSource(&mockReader{format: stereo(8000), samples: make([]int, 100)}, 16, false)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if src.BufSize() != DefaultBufSize {
		t.Errorf("BufSize() = %d before reading, want %d", src.BufSize(), DefaultBufSize)
	}
	if _, err := src.ReadSamples(make([]float32, 64)); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if src.BufSize() != 64 {
		t.Errorf("BufSize() = %d, want 64", src.BufSize())
	}
	if n, _ := src.ReadSamples(nil); n != 0 {
		t.Errorf("ReadSamples(nil) = %d, want 0", n)
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	seekable := bytes.NewReader([]byte("abc"))
	rs, err := ReadSeeker(seekable)
	if err != nil || rs != io.ReadSeeker(seekable) {
		t.Errorf("ReadSeeker(seekable) = %v, %v, want the same reader", rs, err)
	}

	rs, err = ReadSeeker(io.MultiReader(strings.NewReader("hello")))
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "ello" {
		t.Errorf("read after seek = %q, want %q", rest, "ello")
	}
}
