// SPDX-License-Identifier: EPL-2.0

package cliptrack

import "errors"

var (
	ErrUnsupportedFormat = errors.New("no decoder registered for format")
	ErrEmptySource       = errors.New("source produced no samples")
	ErrInvalidBlockSize  = errors.New("block size must be positive and at most the engine's max frames")
)
