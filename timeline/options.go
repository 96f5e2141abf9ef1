// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultCapacity is the default number of in-flight updates.
	DefaultCapacity = 128
	// DefaultMaxFrames is the default largest block Process renders.
	DefaultMaxFrames = 4096
)

// OverflowPolicy decides what a Handle does when the update ring is full.
type OverflowPolicy int

const (
	// OverflowCoalesce remembers that the engine is behind and, on the next
	// publish or Flush, sends one full snapshot of the current clip set in
	// place of everything that could not be queued. No edit is lost.
	OverflowCoalesce OverflowPolicy = iota
	// OverflowPanic treats a full ring as a broken contract and panics with
	// an error wrapping ErrChannelFull.
	OverflowPanic
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowCoalesce:
		return "coalesce"
	case OverflowPanic:
		return "panic"
	}
	return fmt.Sprintf("OverflowPolicy(%d)", int(p))
}

// Options configures a Handle/Engine pair.
type Options struct {
	// MaxFrames is the largest block the host will ask Process for. The
	// engine pre-allocates its scratch buffers to this size.
	MaxFrames int
	// Capacity is the minimum number of updates that can be in flight. It is
	// rounded up to a power of two.
	Capacity int
	// Overflow selects the full-ring policy.
	Overflow OverflowPolicy
	// Logger receives control-side diagnostics. The engine never logs.
	// Nil discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns the options New uses for zero fields.
func DefaultOptions() Options {
	return Options{
		MaxFrames: DefaultMaxFrames,
		Capacity:  DefaultCapacity,
		Overflow:  OverflowCoalesce,
	}
}

// withDefaults fills zero MaxFrames and Capacity from DefaultOptions.
// Negative values are left for validate to reject.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxFrames == 0 {
		o.MaxFrames = d.MaxFrames
	}
	if o.Capacity == 0 {
		o.Capacity = d.Capacity
	}
	return o
}

func (o Options) validate() error {
	if o.MaxFrames <= 0 {
		return fmt.Errorf("max frames %d: %w", o.MaxFrames, ErrInvalidMaxFrames)
	}
	if o.Capacity <= 0 {
		return fmt.Errorf("capacity %d: %w", o.Capacity, ErrInvalidCapacity)
	}
	switch o.Overflow {
	case OverflowCoalesce, OverflowPanic:
	default:
		return fmt.Errorf("%v: %w", o.Overflow, ErrInvalidOverflowPolicy)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
