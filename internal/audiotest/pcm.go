// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/cliptrack/pcm"
)

// PCM builds a stereo buffer from gen(frame) -> (left, right). It panics on
// invalid input since it is only meant for tests.
func PCM(sampleRate, frames int, gen func(frame int) (float32, float32)) *pcm.Buffer {
	left := make([]float32, frames)
	right := make([]float32, frames)
	for i := range frames {
		left[i], right[i] = gen(i)
	}

	b, err := pcm.New(sampleRate, left, right)
	if err != nil {
		panic(err)
	}
	return b
}

// RampPCM has left[i] = (i+1)/frames and right[i] = -left[i], so every frame
// is distinct and non-zero.
func RampPCM(sampleRate, frames int) *pcm.Buffer {
	return PCM(sampleRate, frames, func(i int) (float32, float32) {
		v := float32(i+1) / float32(frames)
		return v, -v
	})
}

// ConstantPCM has the same value on both sides of every frame.
func ConstantPCM(sampleRate, frames int, value float32) *pcm.Buffer {
	return PCM(sampleRate, frames, func(int) (float32, float32) {
		return value, value
	})
}

// SinePCM is a stereo sine with the right side a quarter period ahead.
func SinePCM(sampleRate, frames int, frequency float64) *pcm.Buffer {
	return PCM(sampleRate, frames, func(i int) (float32, float32) {
		phase := 2 * math.Pi * frequency * float64(i) / float64(sampleRate)
		return float32(math.Sin(phase)), float32(math.Cos(phase))
	})
}
