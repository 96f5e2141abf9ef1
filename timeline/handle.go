// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Handle is the control-side owner of a track's clips. It holds the
// authoritative clip set and publishes every change to its Engine.
//
// Handle methods may be called from any goroutine; they serialize on an
// internal mutex that the Engine never touches.
type Handle struct {
	*link

	mu      sync.Mutex
	nextID  ClipID
	set     *clipSet
	policy  OverflowPolicy
	pending bool // a full snapshot is owed to the engine

	collectMu sync.Mutex

	log *slog.Logger

	published atomic.Uint64
	coalesced atomic.Uint64
	collected atomic.Uint64
}

// Stats is a snapshot of a Handle's counters.
type Stats struct {
	// Published counts messages accepted by the update ring.
	Published uint64
	// Coalesced counts messages folded into a pending snapshot because the
	// ring was full.
	Coalesced uint64
	// Pending reports whether a snapshot is still waiting for room.
	Pending bool
	// Collected counts retired clip sets released by Collect.
	Collected uint64
	// RetireDrops counts retired sets the engine could not hand back.
	RetireDrops uint64
}

// Add resolves p against tm, stores it under a fresh ID and publishes the
// new clip set.
func (h *Handle) Add(p Placement, tm TempoMap) ClipID {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	c := Resolve(id, p, tm)
	h.set.insert(c)

	h.log.Debug("clip added",
		slog.Uint64("id", uint64(id)),
		slog.Int64("start", int64(c.StartFrame)),
		slog.Int64("end", int64(c.EndFrame)),
	)

	h.publishSet()

	return id
}

// Remove deletes the clip with the given ID and publishes the new clip set.
// An unknown ID returns ErrClipNotFound and changes nothing.
func (h *Handle) Remove(id ClipID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.set.remove(id) {
		return fmt.Errorf("remove %d: %w", id, ErrClipNotFound)
	}

	h.log.Debug("clip removed", slog.Uint64("id", uint64(id)))

	h.publishSet()

	return nil
}

// Modify replaces the placement of an existing clip and publishes only
// that clip. An unknown ID returns ErrClipNotFound and changes nothing.
func (h *Handle) Modify(id ClipID, p Placement, tm TempoMap) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.set.get(id); !ok {
		return fmt.Errorf("modify %d: %w", id, ErrClipNotFound)
	}

	c := Resolve(id, p, tm)
	h.set.patch(c)

	h.publish(message{kind: patchOne, clip: c})

	return nil
}

// TempoChanged re-resolves every clip against tm and publishes the whole
// set once.
func (h *Handle) TempoChanged(tm TempoMap) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.set.clips {
		c := &h.set.clips[i]
		*c = Resolve(c.ID, c.Placement, tm)
	}

	h.log.Debug("tempo changed", slog.Int("clips", h.set.len()))

	h.publishSet()
}

// Clip returns the authoritative state of one clip.
func (h *Handle) Clip(id ClipID) (Clip, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.set.get(id)
	if !ok {
		return Clip{}, false
	}
	return *c, true
}

// Clips returns a copy of every clip ordered by ID.
func (h *Handle) Clips() []Clip {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Clip(nil), h.set.clips...)
}

// Len returns the number of clips.
func (h *Handle) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.set.len()
}

// Flush retries a pending snapshot. It reports whether the engine has been
// sent everything, i.e. whether nothing is pending any more.
func (h *Handle) Flush() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.pending {
		return true
	}
	return h.retryPending()
}

// Collect releases every clip set the engine has retired and returns how
// many there were. Call it periodically, or run RunCollector.
func (h *Handle) Collect() int {
	h.collectMu.Lock()
	defer h.collectMu.Unlock()

	n := 0
	for {
		s, ok := h.retired.Pop()
		if !ok {
			break
		}
		s.clips = nil
		s.index = nil
		n++
	}

	if n > 0 {
		h.collected.Add(uint64(n))
		h.log.Debug("retired clip sets collected", slog.Int("count", n))
	}

	return n
}

// Stats returns the current counters.
func (h *Handle) Stats() Stats {
	h.mu.Lock()
	pending := h.pending
	h.mu.Unlock()

	return Stats{
		Published:   h.published.Load(),
		Coalesced:   h.coalesced.Load(),
		Pending:     pending,
		Collected:   h.collected.Load(),
		RetireDrops: h.retireDrops.Load(),
	}
}

func (h *Handle) publishSet() {
	if h.pending {
		// The snapshot is built from h.set, which already holds this change.
		h.publishPending()
		return
	}
	h.publish(message{kind: replaceAll, set: h.set.clone()})
}

// publish must be called with h.mu held.
func (h *Handle) publish(m message) {
	if h.pending {
		h.publishPending()
		return
	}

	if h.updates.Push(m) {
		h.published.Add(1)
		return
	}

	switch h.policy {
	case OverflowPanic:
		panic(fmt.Errorf("publish %v: %w", m.kind, ErrChannelFull))
	default:
		h.pending = true
		h.coalesced.Add(1)
		h.log.Warn("update channel full, coalescing",
			slog.String("kind", m.kind.String()),
			slog.Int("capacity", h.updates.Cap()),
		)
	}
}

func (h *Handle) publishPending() {
	if !h.retryPending() {
		h.coalesced.Add(1)
	}
}

// retryPending must be called with h.mu held and h.pending set.
func (h *Handle) retryPending() bool {
	if h.updates.Len() >= h.updates.Cap() {
		return false
	}

	if !h.updates.Push(message{kind: replaceAll, set: h.set.clone()}) {
		return false
	}

	h.pending = false
	h.published.Add(1)
	h.log.Info("pending snapshot delivered", slog.Int("clips", h.set.len()))

	return true
}
