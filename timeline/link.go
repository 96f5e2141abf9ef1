// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"log/slog"
	"sync/atomic"

	"github.com/ik5/cliptrack/internal/spsc"
)

// link is the pair of rings shared by one Handle and one Engine.
//
// updates flows Handle -> Engine. retired flows back Engine -> Handle and
// carries the sets the engine no longer owns, so they are released on the
// control side instead of inside the audio callback.
type link struct {
	updates *spsc.Ring[message]
	retired *spsc.Ring[*clipSet]

	// retireDrops counts sets the engine had to drop because retired was
	// full. The garbage collector still reclaims them.
	retireDrops atomic.Uint64
}

func newLink(capacity int) *link {
	return &link{
		updates: spsc.New[message](capacity),
		// Every replaceAll can retire one set, so the retire ring must
		// be at least as large as the update ring plus the initial set.
		retired: spsc.New[*clipSet](capacity + 1),
	}
}

// New creates a connected Handle and Engine. The Handle belongs to the
// control side and the Engine to the audio callback. Zero MaxFrames and
// Capacity take their DefaultOptions values.
func New(opts Options) (*Handle, *Engine, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}

	l := newLink(opts.Capacity)

	h := &Handle{
		link:   l,
		set:    newClipSet(0),
		policy: opts.Overflow,
		log:    opts.logger(),
	}

	e := &Engine{
		link:      l,
		set:       newClipSet(0),
		scratchL:  make([]float32, opts.MaxFrames),
		scratchR:  make([]float32, opts.MaxFrames),
		maxFrames: opts.MaxFrames,
	}

	h.log.Debug("timeline created",
		slog.Int("max_frames", opts.MaxFrames),
		slog.Int("capacity", l.updates.Cap()),
		slog.String("overflow", opts.Overflow.String()),
	)

	return h, e, nil
}
