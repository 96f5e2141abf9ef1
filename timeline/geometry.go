// SPDX-License-Identifier: EPL-2.0

package timeline

import "github.com/ik5/cliptrack/tempo"

// Resolve converts a placement into frame geometry using tm.
//
// The end frame is derived from the start in seconds, not by adding a frame
// count, so tempo changes inside the clip are honoured. Negative lengths and
// fades count as zero, and fades are clamped so that
//
//	StartFrame <= FadeInEndFrame <= FadeOutStartFrame <= EndFrame
//
// holds for every input.
func Resolve(id ClipID, p Placement, tm TempoMap) Clip {
	length := max(p.Length, 0)
	fadeIn := max(p.FadeIn, 0)
	fadeOut := max(p.FadeOut, 0)

	startFrame := tm.MusicalToNearestFrameRound(p.Start)
	startSecs := tm.MusicalToSeconds(p.Start)

	endFrame := max(tm.SecondsToNearestFrameRound(startSecs+length), startFrame)

	fadeInEnd := startFrame
	if fadeIn != 0 {
		fadeInEnd = tm.SecondsToNearestFrameRound(startSecs + fadeIn)
	}
	fadeInEnd = clampFrames(fadeInEnd, startFrame, endFrame)

	fadeOutStart := endFrame
	if fadeOut != 0 {
		fadeOutStart = tm.SecondsToNearestFrameRound(startSecs + length - fadeOut)
	}
	fadeOutStart = clampFrames(fadeOutStart, fadeInEnd, endFrame)

	var (
		offsetFrames tempo.Frames
		offsetSub    float64
	)
	if p.PCM != nil {
		offsetFrames, offsetSub = p.StartOffset.ToSubFrame(p.PCM.SampleRate())
	}

	return Clip{
		ID:                id,
		Placement:         p,
		StartFrame:        startFrame,
		EndFrame:          endFrame,
		FadeInEndFrame:    fadeInEnd,
		FadeOutStartFrame: fadeOutStart,
		OffsetFrames:      offsetFrames,
		OffsetSubFrame:    offsetSub,
	}
}

func clampFrames(v, lo, hi tempo.Frames) tempo.Frames {
	return min(max(v, lo), hi)
}
