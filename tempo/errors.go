// SPDX-License-Identifier: EPL-2.0

package tempo

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidBPM        = errors.New("tempo must be a positive, finite BPM")
	ErrInvalidChange     = errors.New("tempo change must be at a non-negative beat")
)
