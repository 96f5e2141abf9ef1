// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// Only uncompressed PCM is read. Samples of 8, 16, 24 and 32 bits are
// scaled to float32 in [-1, 1]; any channel count and sample rate is kept
// as found in the COMM chunk. Inputs that are not an io.Seeker are read
// into memory first.
//
// Decoding is registered for the "aif" and "aiff" extensions by the
// top-level loader, so clips can be created from AIFF files the same way as
// from WAV or FLAC.
package aiff
