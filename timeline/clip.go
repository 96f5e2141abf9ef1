// SPDX-License-Identifier: EPL-2.0

package timeline

import "github.com/ik5/cliptrack/tempo"

// ClipID identifies a clip within one track. IDs are handed out in
// increasing order by a Handle and never reused.
type ClipID uint64

// TempoMap converts musical time to seconds and sample frames. It must be
// deterministic and monotonic in its inputs.
type TempoMap interface {
	MusicalToSeconds(t tempo.MusicalTime) tempo.Seconds
	MusicalToNearestFrameRound(t tempo.MusicalTime) tempo.Frames
	SecondsToNearestFrameRound(s tempo.Seconds) tempo.Frames
}

// PCM is the read-only sample store behind a clip. FillStereo must zero-fill
// every requested frame outside the stored range and must not allocate.
// *pcm.Buffer satisfies it.
type PCM interface {
	SampleRate() int
	FillStereo(frame int64, sub float64, left, right []float32)
}

// Placement is the authored description of a clip.
type Placement struct {
	// Start is the timeline position of the first audible sample.
	Start tempo.MusicalTime
	// Length is how long the clip plays.
	Length tempo.Seconds
	// FadeIn and FadeOut are linear gain ramps at the clip edges.
	FadeIn  tempo.Seconds
	FadeOut tempo.Seconds
	// StartOffset skips this much of the PCM data before the first audible
	// sample.
	StartOffset tempo.SuperFrames
	// PCM is shared with every other clip that plays the same audio.
	PCM PCM
}

// Clip is a placement resolved against a tempo map. It is always produced
// whole by Resolve and never edited field by field.
type Clip struct {
	ID        ClipID
	Placement Placement

	StartFrame tempo.Frames
	EndFrame   tempo.Frames

	FadeInEndFrame    tempo.Frames
	FadeOutStartFrame tempo.Frames

	// OffsetFrames and OffsetSubFrame split Placement.StartOffset at the
	// PCM's own sample rate. OffsetSubFrame is in [0, 1).
	OffsetFrames   tempo.Frames
	OffsetSubFrame float64
}

// Empty reports whether the clip covers no frames.
func (c *Clip) Empty() bool {
	return c.EndFrame <= c.StartFrame
}

// overlaps reports whether the clip is audible anywhere in
// [playhead, playhead+frames).
func (c *Clip) overlaps(playhead tempo.Frames, frames int) bool {
	return c.StartFrame < c.EndFrame &&
		playhead < c.EndFrame &&
		c.StartFrame < playhead+tempo.Frames(frames)
}
