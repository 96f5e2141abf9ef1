// SPDX-License-Identifier: EPL-2.0

package intpcm

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrInvalidFormat       = errors.New("invalid sample format")
)
