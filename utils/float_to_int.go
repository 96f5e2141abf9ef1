// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToInt converts a sample in [-1, 1] to a signed integer of bitDepth
// bits (8 to 32), truncating toward zero. Input outside the range clamps, so
// -1 maps to the most negative value and 1 to the most positive one.
func FloatToInt(x float32, bitDepth int) int {
	if bitDepth < 8 || bitDepth > 32 {
		bitDepth = 16
	}

	neg := int64(1) << (bitDepth - 1)
	pos := neg - 1

	switch {
	case x >= 1:
		return int(pos)
	case x <= -1:
		return int(-neg)
	case x >= 0:
		return int(float64(x) * float64(pos))
	default:
		return int(float64(x) * float64(neg))
	}
}

// Float32ToInt16 is FloatToInt at 16 bits.
func Float32ToInt16(x float32) int16 {
	return int16(FloatToInt(x, 16))
}

// Interleave writes left and right as alternating samples into dst, which
// is grown when too short, and returns it. Only min(len(left), len(right))
// frames are written.
func Interleave(dst, left, right []float32) []float32 {
	n := min(len(left), len(right))
	if cap(dst) < 2*n {
		dst = make([]float32, 2*n)
	}
	dst = dst[:2*n]

	for i := range n {
		dst[2*i] = left[i]
		dst[2*i+1] = right[i]
	}

	return dst
}
