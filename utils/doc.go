// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample-level helpers shared by the decoders,
// the PCM store and the WAV writer.
package utils
