// SPDX-License-Identifier: EPL-2.0

// Package cliptrack renders the audio clips of a single timeline track in
// real time.
//
// The work is split between two goroutines. The control side owns a
// timeline.Handle and edits clips in musical time; every edit is resolved
// to sample frames through a tempo map and published over a lock-free
// single-producer single-consumer ring. The audio side owns the matching
// timeline.Engine and calls Process once per block from the host callback.
// Process drains pending updates, mixes every overlapping clip into the
// stereo outputs and applies the host's start/stop and loop-jump declick
// envelopes. It never blocks, never allocates and never takes a lock.
//
// # Packages
//
//   - timeline: geometry resolver, control handle, render engine
//   - tempo: beats to seconds to frames conversion with tempo changes
//   - pcm: immutable stereo sample store read by the engine
//   - transport: playhead, play/stop and loop state producing per-block
//     declick envelopes
//   - audio and formats/*: streaming decoders for WAV, AIFF, FLAC, MP3 and
//     Ogg Vorbis
//
// This package ties them together: LoadFile turns an audio file into a
// pcm.Buffer ready to be placed on the timeline, and Bounce renders a track
// offline into a BlockWriter such as a WAV file.
//
// # Quick Start
//
//	tm, _ := tempo.NewMap(48000, 120)
//	h, e, _ := timeline.New(timeline.DefaultOptions())
//
//	kick, _ := cliptrack.LoadFile(cliptrack.DefaultRegistry(), "kick.wav")
//	h.Add(timeline.Placement{Start: 0, Length: 1, PCM: kick}, tm)
//
//	tr, _ := transport.New(48000, e.MaxFrames(), transport.DefaultDeclick)
//	tr.Play()
//
//	// In the audio callback:
//	e.Process(tr.Next(frames), left, right)
package cliptrack
