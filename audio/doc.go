// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming side of clip loading.
//
// This package contains:
//   - Source interface for decoded audio input
//   - Decoder interface and a format Registry
//   - StereoMixer for folding any channel layout into stereo
//   - ReadAll for draining a Source into memory
//
// # Source Interface
//
// Every format decoder returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns interleaved float32 samples in [-1.0, 1.0] and io.EOF
// once the stream is exhausted.
//
// # Channel Folding
//
// Timeline clips are always rendered in stereo. StereoMixer copies mono to
// both sides and averages wider layouts (even channels to the left, odd
// channels to the right):
//
//	stereo := audio.NewStereoMixer(source)
//	samples, err := audio.ReadAll(stereo, 4096)
//
// The sample rate is never changed; clips play at their native rate.
//
// # Format Registry
//
// The registry maps format keys to decoders. Keys are case-insensitive and a
// leading dot is dropped, so file extensions can be looked up directly:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(filepath.Ext(path))
//
// # Error Handling
//
// io.EOF marks the normal end of a stream. ReadAll swallows it and returns
// ErrStalled if a source stops producing samples without ever reporting EOF.
package audio
