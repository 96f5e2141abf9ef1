// SPDX-License-Identifier: EPL-2.0

package timeline

import "errors"

var (
	// ErrClipNotFound is returned by Remove and Modify for an unknown ID.
	ErrClipNotFound = errors.New("clip not found")
	// ErrChannelFull is wrapped by the panic value under OverflowPanic.
	ErrChannelFull = errors.New("update channel is full")
	// ErrInvalidMaxFrames is returned by New for a negative block size.
	ErrInvalidMaxFrames = errors.New("max frames must be positive")
	// ErrInvalidCapacity is returned by New for a negative capacity.
	ErrInvalidCapacity = errors.New("capacity must be positive")
	// ErrInvalidOverflowPolicy is returned by New for an unknown policy.
	ErrInvalidOverflowPolicy = errors.New("unknown overflow policy")
)
