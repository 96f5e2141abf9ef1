// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
// Frames are decoded one at a time and their subframes interleaved into
// float32 samples in [-1, 1], scaled by the stream's bits per sample. The
// input does not need to be seekable.
package flac
