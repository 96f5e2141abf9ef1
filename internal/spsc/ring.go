// SPDX-License-Identifier: EPL-2.0

// Package spsc provides a bounded single-producer/single-consumer queue that
// never blocks and never allocates after construction.
//
// Exactly one goroutine may call Push and exactly one goroutine may call Pop
// at any given time. The two may be different goroutines running
// concurrently; that is the whole point of the type.
package spsc

import "sync/atomic"

// cacheLine keeps the producer and consumer counters on separate lines.
const cacheLine = 64

// Ring is a fixed-capacity FIFO.
type Ring[T any] struct {
	buf  []T
	mask uint64

	_    [cacheLine]byte
	head atomic.Uint64 // next slot to read, owned by the consumer
	_    [cacheLine - 8]byte
	tail atomic.Uint64 // next slot to write, owned by the producer
	_    [cacheLine - 8]byte
}

// New creates a ring holding at least capacity items. The real capacity is
// rounded up to the next power of two; a capacity below 1 is treated as 1.
func New[T any](capacity int) *Ring[T] {
	size := 1
	for size < capacity {
		size <<= 1
	}

	return &Ring[T]{
		buf:  make([]T, size),
		mask: uint64(size - 1),
	}
}

// Push appends v. It reports false, leaving the ring untouched, when the ring
// is full.
func (r *Ring[T]) Push(v T) bool {
	tail := r.tail.Load()
	head := r.head.Load()

	if tail-head == uint64(len(r.buf)) {
		return false
	}

	r.buf[tail&r.mask] = v
	r.tail.Store(tail + 1)

	return true
}

// Pop removes the oldest item. The vacated slot is zeroed so the ring does
// not keep the item reachable.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T

	head := r.head.Load()
	tail := r.tail.Load()

	if head == tail {
		return zero, false
	}

	idx := head & r.mask
	v := r.buf[idx]
	r.buf[idx] = zero
	r.head.Store(head + 1)

	return v, true
}

// Len returns the number of queued items. The answer is only a snapshot when
// the other side is running concurrently.
func (r *Ring[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns the real capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }
