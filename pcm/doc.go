// SPDX-License-Identifier: EPL-2.0

// Package pcm stores decoded audio in RAM for random-access playback.
//
// A Buffer is built once, never modified, and shared by pointer between every
// clip that plays it:
//
//	buf, err := pcm.FromInterleaved(48000, 2, samples)
//
//	left := make([]float32, 512)
//	right := make([]float32, 512)
//	buf.FillStereo(-100, 0, left, right) // first 100 frames are silence
//
// FillStereo is the only read path the renderer uses. It accepts any signed
// start frame and zero-fills whatever falls outside the buffer, so callers
// never need to clip their read window.
//
// Buffers can also be built from go-audio containers with FromIntBuffer and
// FromFloat32Buffer.
package pcm
