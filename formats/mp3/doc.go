// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo float32 samples in [-1, 1]
// at the stream's sample rate; mono files are duplicated to both channels
// by go-mp3. Encoding is not supported.
package mp3
