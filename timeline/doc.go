// SPDX-License-Identifier: EPL-2.0

// Package timeline renders the clips of one track inside a real-time audio
// callback.
//
// New returns two halves. The Handle lives on the control side: it owns the
// authoritative clip set, resolves every placement against a tempo map and
// publishes each change. The Engine lives on the audio callback: once per
// block Process drains the pending changes and mixes every audible clip
// into a stereo output, applying clip fades and the host's start/stop and
// loop-jump declick envelopes.
//
// The two halves share nothing but a pair of bounded lock-free rings.
// Structural edits (Add, Remove, TempoChanged) send a complete copy of the
// clip set whose ownership moves to the Engine. Modify sends just the one
// changed clip. Sets the Engine replaces travel back on the second ring and
// are released by Handle.Collect, so no memory is freed on the audio
// callback.
//
// When the update ring is full the Handle follows its OverflowPolicy. The
// default coalesces: it sends a single full snapshot as soon as room
// appears, on the next edit or Flush.
//
// Updates are applied in the order they were published. A patch for a clip
// the Engine does not hold is ignored; the Handle's copy stays the source of
// truth.
package timeline
