// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile         = errors.New("not a FLAC stream")
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
	ErrInvalidStreamInfo   = errors.New("invalid FLAC stream info")
	ErrChannelMismatch     = errors.New("FLAC frame channel count differs from stream info")
)
