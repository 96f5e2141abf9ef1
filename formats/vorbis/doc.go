// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Samples are produced as interleaved float32 values at the stream's own
// channel count and sample rate. The loader registers the decoder for the
// "ogg" and "oga" extensions.
package vorbis
