// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// StereoMixer folds any channel layout into interleaved stereo.
//
//   - mono is copied to both sides
//   - stereo passes through
//   - wider layouts average even channels into left and odd channels
//     into right
type StereoMixer struct {
	src Source
	tmp []float32
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }
func (m *StereoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with interleaved stereo. len(dst) must be even.
func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 0 {
		return 0, ErrNoChannels
	}
	if channels == 2 {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / 2
	samplesNeeded := frames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	got := n / channels

	switch channels {
	case 1:
		for f := range got {
			v := m.tmp[f]
			dst[f<<1] = v
			dst[f<<1+1] = v
		}
	default:
		leftCount := float32((channels + 1) / 2)
		rightCount := float32(channels / 2)
		for f := range got {
			base := f * channels
			var l, r float32
			for c := 0; c < channels; c += 2 {
				l += m.tmp[base+c]
			}
			for c := 1; c < channels; c += 2 {
				r += m.tmp[base+c]
			}
			dst[f<<1] = l / leftCount
			dst[f<<1+1] = r / rightCount
		}
	}

	return got * 2, err
}

// maxIdleReads bounds how many empty, error-free reads ReadAll tolerates.
const maxIdleReads = 64

// ReadAll drains src into one interleaved slice, reading bufferSize samples
// at a time. Reaching io.EOF is not an error.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = 4096
	}
	if ch := src.Channels(); ch > 0 && bufferSize%ch != 0 {
		bufferSize += ch - bufferSize%ch
	}

	out := make([]float32, 0, bufferSize)
	buf := make([]float32, bufferSize)
	idle := 0

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		if n > 0 {
			idle = 0
			continue
		}
		idle++
		if idle >= maxIdleReads {
			return out, ErrStalled
		}
	}
}
