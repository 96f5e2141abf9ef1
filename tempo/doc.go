// SPDX-License-Identifier: EPL-2.0

// Package tempo holds the time units shared by the timeline and a tempo map
// that converts between them.
//
// Positions on a timeline are authored in musical time (beats). Rendering
// needs sample frames. A Map turns one into the other through seconds,
// honouring tempo changes:
//
//	m, err := tempo.NewMap(48000, 120,
//	    tempo.Change{At: 16, BPM: 90},
//	)
//	secs := m.MusicalToSeconds(4)             // 2s at 120 BPM
//	frame := m.MusicalToNearestFrameRound(4)  // 96000
//
// A Map is immutable once built and safe for concurrent use.
//
// # Units
//
//   - MusicalTime: beats, float64
//   - Seconds: float64
//   - Frames: signed int64 sample frames
//   - SuperFrames: int64 ticks at SuperSampleRate, used for offsets that must
//     survive conversion to any common sample rate without drift
package tempo
