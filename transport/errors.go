// SPDX-License-Identifier: EPL-2.0

package transport

import "errors"

var (
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	ErrInvalidMaxFrames  = errors.New("max frames must be positive")
	ErrInvalidLoop       = errors.New("invalid loop region")
	ErrLoopTooShort      = errors.New("loop region too short")
)
