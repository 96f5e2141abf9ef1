// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/cliptrack/utils"
)

// Writer streams interleaved float32 samples into a PCM WAV file. The
// header is finalized by Close, so the destination must be seekable.
type Writer struct {
	enc      *wav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	bitDepth int
	bias     int
	frames   int
	closed   bool
}

// NewWriter prepares a WAV file of channels channels at sampleRate with
// bitDepth bits per sample (8, 16, 24 or 32). Nothing is written until the
// first call to Write or Close.
func NewWriter(w io.WriteSeeker, sampleRate, channels, bitDepth int) (*Writer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%d Hz: %w", sampleRate, ErrInvalidSampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%d channels: %w", channels, ErrInvalidChannels)
	}

	bias := 0
	switch bitDepth {
	case 8:
		bias = 1 << 7
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	wr := &Writer{
		enc:      wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM),
		channels: channels,
		bitDepth: bitDepth,
		bias:     bias,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}

	return wr, nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int { return w.frames }

// Write appends samples, which must hold whole frames. Values outside
// [-1, 1] are clipped.
func (w *Writer) Write(samples []float32) error {
	if w.closed {
		return ErrWriterClosed
	}
	if len(samples)%w.channels != 0 {
		return fmt.Errorf("%d samples for %d channels: %w", len(samples), w.channels, ErrPartialFrame)
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]

	for i, s := range samples {
		w.buf.Data[i] = utils.FloatToInt(s, w.bitDepth) + w.bias
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	w.frames += len(samples) / w.channels

	return nil
}

// Close fixes up the header sizes. It does not close the underlying
// writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	if w.frames == 0 {
		// Emits the header and an empty data chunk.
		if err := w.Write(nil); err != nil {
			return err
		}
	}
	w.closed = true

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFloat32 writes interleaved samples as a complete WAV file.
func WriteFloat32(w io.WriteSeeker, sampleRate, channels, bitDepth int, samples []float32) error {
	wr, err := NewWriter(w, sampleRate, channels, bitDepth)
	if err != nil {
		return err
	}
	if err := wr.Write(samples); err != nil {
		return err
	}
	return wr.Close()
}

// WriteWAV16 writes interleaved 16-bit samples as a complete WAV file.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%d Hz: %w", sampleRate, ErrInvalidSampleRate)
	}
	if channels <= 0 {
		return fmt.Errorf("%d channels: %w", channels, ErrInvalidChannels)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%d samples for %d channels: %w", len(samples), channels, ErrPartialFrame)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(w, sampleRate, 16, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
