// SPDX-License-Identifier: EPL-2.0

package pcm

import "github.com/ik5/cliptrack/utils"

// FillStereo reads min(len(left), len(right)) frames starting at the signed
// source position frame+sub, where sub is a fraction in [0, 1).
//
// Source frames outside [0, Len) read as silence. With sub == 0 the samples
// are copied verbatim; otherwise each output frame is a Catmull-Rom
// interpolation of its four neighbours.
//
// FillStereo never allocates and is safe to call from an audio callback.
func (b *Buffer) FillStereo(frame int64, sub float64, left, right []float32) {
	n := min(len(left), len(right))
	left = left[:n]
	right = right[:n]

	if sub == 0 {
		b.copyStereo(frame, left, right)
		return
	}

	x := float32(sub)
	for i := range n {
		pos := frame + int64(i)
		l0, r0 := b.at(pos - 1)
		l1, r1 := b.at(pos)
		l2, r2 := b.at(pos + 1)
		l3, r3 := b.at(pos + 2)
		left[i] = utils.CubicInterpolate(l0, l1, l2, l3, x)
		right[i] = utils.CubicInterpolate(r0, r1, r2, r3, x)
	}
}

func (b *Buffer) copyStereo(frame int64, left, right []float32) {
	n := int64(len(left))
	size := int64(len(b.left))

	// [lo, hi) is the part of the request that lands inside the buffer,
	// relative to the start of left/right.
	lo := max(-frame, 0)
	hi := min(size-frame, n)

	if lo >= hi {
		clear(left)
		clear(right)
		return
	}

	clear(left[:lo])
	clear(right[:lo])

	copy(left[lo:hi], b.left[frame+lo:frame+hi])
	copy(right[lo:hi], b.right[frame+lo:frame+hi])

	clear(left[hi:])
	clear(right[hi:])
}

func (b *Buffer) at(pos int64) (float32, float32) {
	if pos < 0 || pos >= int64(len(b.left)) {
		return 0, 0
	}
	return b.left[pos], b.right[pos]
}
