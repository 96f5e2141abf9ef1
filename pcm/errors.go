// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrChannelLength       = errors.New("left and right channels differ in length")
	ErrPartialFrame        = errors.New("sample count is not a multiple of the channel count")
	ErrUnsupportedChannels = errors.New("only mono and stereo PCM is supported")
	ErrMissingFormat       = errors.New("buffer has no format")
)
