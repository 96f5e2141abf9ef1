// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/cliptrack/audio"
	"github.com/ik5/cliptrack/formats/internal/intpcm"
)

// commonBlockSize is the block size reference encoders use at CD rates.
const commonBlockSize = 4096

// frameReader is the part of *flac.Stream that source reads from.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source interleaves the per-channel subframes of each FLAC frame. A frame
// that does not fit in dst is kept and continued on the next read.
type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	scale      float32

	cur  *frame.Frame
	pos  int
	done bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.stream.Close() }

// BufSize is a common FLAC block size for every channel.
func (s *source) BufSize() int { return commonBlockSize * s.channels }

func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n+s.channels <= len(dst) {
		if s.cur == nil || s.pos >= len(s.cur.Subframes[0].Samples) {
			if s.done {
				break
			}
			if err := s.next(); err != nil {
				return n, err
			}
			continue
		}

		for ch := range s.channels {
			dst[n] = float32(s.cur.Subframes[ch].Samples[s.pos]) / s.scale
			n++
		}
		s.pos++
	}

	if n == 0 && s.done {
		return 0, io.EOF
	}

	return n, nil
}

// next loads the following frame, or marks the stream done at its end.
func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.done = true
		s.cur = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%d subframes for %d channels: %w", len(f.Subframes), s.channels, ErrChannelMismatch)
	}

	s.cur = f
	s.pos = 0

	return nil
}

// Decoder reads FLAC streams with github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.SampleRate == 0 || info.NChannels == 0 {
		stream.Close()
		return nil, ErrInvalidStreamInfo
	}

	bits := int(info.BitsPerSample)
	if bits < 4 || bits > 32 {
		stream.Close()
		return nil, fmt.Errorf("%d bits: %w", bits, ErrUnsupportedBitDepth)
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      intpcm.Scale(bits),
	}, nil
}
