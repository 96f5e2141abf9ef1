// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/cliptrack/tempo"
)

// Buffer is immutable, de-interleaved PCM held in RAM. Mono buffers share
// one slice for both sides.
//
// Nothing mutates a Buffer after construction, so any number of goroutines
// (including the audio callback) may read it without synchronization.
type Buffer struct {
	sampleRate int
	channels   int
	left       []float32
	right      []float32
}

// New wraps left and right, which must have the same length. The buffer
// takes ownership of both slices; callers must not modify them afterwards.
func New(sampleRate int, left, right []float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if len(left) != len(right) {
		return nil, fmt.Errorf("left=%d right=%d: %w", len(left), len(right), ErrChannelLength)
	}

	return &Buffer{
		sampleRate: sampleRate,
		channels:   2,
		left:       left,
		right:      right,
	}, nil
}

// NewMono wraps a single channel. Both stereo sides read the same data.
func NewMono(sampleRate int, data []float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &Buffer{
		sampleRate: sampleRate,
		channels:   1,
		left:       data,
		right:      data,
	}, nil
}

// FromInterleaved copies interleaved mono or stereo samples.
func FromInterleaved(sampleRate, channels int, data []float32) (*Buffer, error) {
	switch channels {
	case 1:
		return NewMono(sampleRate, append([]float32(nil), data...))
	case 2:
		if len(data)%2 != 0 {
			return nil, fmt.Errorf("%d samples: %w", len(data), ErrPartialFrame)
		}

		frames := len(data) / 2
		left := make([]float32, frames)
		right := make([]float32, frames)
		for f := range frames {
			idx := f << 1
			left[f] = data[idx]
			right[f] = data[idx+1]
		}

		return New(sampleRate, left, right)
	default:
		return nil, fmt.Errorf("%d channels: %w", channels, ErrUnsupportedChannels)
	}
}

// FromFloat32Buffer converts a go-audio float buffer holding mono or stereo
// samples in [-1, 1].
func FromFloat32Buffer(buf *goaudio.Float32Buffer) (*Buffer, error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrMissingFormat
	}

	return FromInterleaved(buf.Format.SampleRate, buf.Format.NumChannels, buf.Data)
}

// FromIntBuffer converts a go-audio integer buffer, scaling by its
// SourceBitDepth (16-bit when unset).
func FromIntBuffer(buf *goaudio.IntBuffer) (*Buffer, error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrMissingFormat
	}

	depth := buf.SourceBitDepth
	if depth <= 0 {
		depth = 16
	}
	scale := float32(int64(1) << (depth - 1))

	data := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float32(v) / scale
	}

	return FromInterleaved(buf.Format.SampleRate, buf.Format.NumChannels, data)
}

// SampleRate of the stored audio in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Channels is 1 for mono buffers and 2 for stereo.
func (b *Buffer) Channels() int { return b.channels }

// Len is the length in frames.
func (b *Buffer) Len() int { return len(b.left) }

// Duration is the length in seconds.
func (b *Buffer) Duration() tempo.Seconds {
	return tempo.Seconds(float64(len(b.left)) / float64(b.sampleRate))
}

// Frame returns one stereo frame; frames outside the buffer are silent.
func (b *Buffer) Frame(i int) (float32, float32) {
	if i < 0 || i >= len(b.left) {
		return 0, 0
	}
	return b.left[i], b.right[i]
}
