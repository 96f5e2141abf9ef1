// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedEncoding = errors.New("unsupported WAV encoding")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrNoPCMData           = errors.New("WAV file has no data chunk")
	ErrInvalidSampleRate   = errors.New("invalid sample rate")
	ErrInvalidChannels     = errors.New("invalid channel count")
	ErrPartialFrame        = errors.New("sample count is not a whole number of frames")
	ErrWriterClosed        = errors.New("WAV writer is closed")
)
