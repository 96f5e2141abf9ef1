// SPDX-License-Identifier: EPL-2.0

package tempo

import "math"

// SuperSampleRate is the tick rate of SuperFrames. It is divisible by every
// common audio sample rate (22050, 44100, 48000, 88200, 96000, 176400,
// 192000) so offsets convert to frames without rounding.
const SuperSampleRate = 282_240_000

// MusicalTime is a position on the timeline measured in beats.
type MusicalTime float64

// Seconds is a duration or position in seconds.
type Seconds float64

// Frames is a signed sample-frame count or position.
type Frames int64

// SuperFrames is a high precision duration in 1/SuperSampleRate seconds.
type SuperFrames int64

// ToNearestFrameRound converts s to frames at sampleRate, rounding half away
// from zero.
func (s Seconds) ToNearestFrameRound(sampleRate int) Frames {
	return Frames(math.Round(float64(s) * float64(sampleRate)))
}

// SecondsToSuperFrames converts s to the nearest SuperFrames value.
func SecondsToSuperFrames(s Seconds) SuperFrames {
	return SuperFrames(math.Round(float64(s) * SuperSampleRate))
}

// Seconds converts sf to seconds.
func (sf SuperFrames) Seconds() Seconds {
	return Seconds(float64(sf) / SuperSampleRate)
}

// ToSubFrame splits sf into whole frames at sampleRate plus the fractional
// remainder in [0, 1). The split is exact integer arithmetic whenever
// sampleRate divides SuperSampleRate.
func (sf SuperFrames) ToSubFrame(sampleRate int) (Frames, float64) {
	if sampleRate <= 0 {
		return 0, 0
	}

	rate := int64(sampleRate)
	v := int64(sf)

	// Split before multiplying so large offsets cannot overflow.
	whole := v / SuperSampleRate
	rem := v % SuperSampleRate
	if rem < 0 {
		whole--
		rem += SuperSampleRate
	}

	scaled := rem * rate
	frames := whole*rate + scaled/SuperSampleRate
	frac := float64(scaled%SuperSampleRate) / SuperSampleRate

	return Frames(frames), frac
}
