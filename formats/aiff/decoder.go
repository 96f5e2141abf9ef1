// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/cliptrack/audio"
	"github.com/ik5/cliptrack/formats/internal/intpcm"
)

// Decoder reads uncompressed big-endian AIFF files of 8, 16, 24 or 32
// bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	// AIFF samples are two's complement at every size, 8 bits included.
	src, err := intpcm.NewSource(dec, int(dec.BitDepth), false)
	switch {
	case errors.Is(err, intpcm.ErrUnsupportedBitDepth):
		return nil, fmt.Errorf("%d bits: %w", dec.BitDepth, ErrUnsupportedBitDepth)
	case errors.Is(err, intpcm.ErrInvalidFormat):
		return nil, ErrUnsupportedAiffLayout
	case err != nil:
		return nil, fmt.Errorf("%w", err)
	}

	return src, nil
}
