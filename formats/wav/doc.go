// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// Decoder accepts 8, 16, 24 and 32-bit PCM with any channel count and
// sample rate and yields an audio.Source of float32 samples in [-1, 1].
// Inputs that are not an io.Seeker are buffered in memory first.
//
// Writer encodes interleaved float32 blocks as they are rendered, which is
// how a timeline bounce is written to disk:
//
//	f, _ := os.Create("bounce.wav")
//	w, _ := wav.NewWriter(f, 48000, 2, 24)
//	for ... {
//		w.Write(block)
//	}
//	w.Close()
//
// Close rewrites the header sizes, so the destination must be seekable.
// WriteWAV16 and WriteFloat32 write a whole buffer in one call.
package wav
