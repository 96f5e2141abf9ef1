// SPDX-License-Identifier: EPL-2.0

package timeline

import "github.com/ik5/cliptrack/tempo"

// Declick carries the host's anti-click envelopes for one block. Gain
// slices are indexed by block frame; a slice shorter than the block is
// ignored and treated as unity gain.
type Declick struct {
	// StartStopActive is set while a start or stop ramp is running.
	StartStopActive bool
	// StartDeclickStart is the frame at which playback started. Clips that
	// begin at or after it keep their onset transient.
	StartDeclickStart tempo.Frames
	StartStopGain     []float32

	// JumpActive is set for a block that crosses a loop boundary or is still
	// inside the crossfade that follows one.
	JumpActive bool
	// JumpOutPlayhead is where the fading-out material is read from.
	JumpOutPlayhead tempo.Frames
	JumpOutGain     []float32
	// JumpInPlayhead is where the fading-in material is read from, aligned
	// so that block frame i maps to JumpInPlayhead+i.
	JumpInPlayhead tempo.Frames
	// JumpInDeclickStart is the jump target. Clips that begin at or after it
	// keep their onset transient.
	JumpInDeclickStart tempo.Frames
	JumpInGain         []float32
}

// ProcInfo describes one block as seen by the host transport.
type ProcInfo struct {
	Playhead tempo.Frames
	Frames   int
	Playing  bool
	Declick  Declick
}

// Engine mixes a track's clips on the audio callback. All of its methods
// must be called from that one goroutine.
//
// Process never blocks, never allocates and never takes a lock.
type Engine struct {
	*link

	set *clipSet

	scratchL []float32
	scratchR []float32

	maxFrames int
}

// MaxFrames returns the largest block Process renders.
func (e *Engine) MaxFrames() int { return e.maxFrames }

// Len returns the number of clips the engine currently knows about.
func (e *Engine) Len() int { return e.set.len() }

// Process applies pending updates and renders one block into outL and outR.
//
// Every sample of outL and outR is written. Frames past
// min(info.Frames, len(outL), len(outR), MaxFrames()) are silent.
func (e *Engine) Process(info *ProcInfo, outL, outR []float32) {
	e.drain()

	clear(outL)
	clear(outR)

	n := min(info.Frames, len(outL), len(outR), e.maxFrames)
	if n <= 0 || e.set.len() == 0 {
		return
	}

	d := &info.Declick
	if !info.Playing && !d.StartStopActive && !d.JumpActive {
		return
	}

	l := outL[:n]
	r := outR[:n]

	var ss []float32
	if d.StartStopActive {
		ss = gainFor(d.StartStopGain, n)
	}

	if !d.JumpActive {
		for i := range e.set.clips {
			c := &e.set.clips[i]
			e.mixClip(c, info.Playhead, l, r, startStopFor(c, info, ss), nil)
		}
		return
	}

	out := gainFor(d.JumpOutGain, n)
	in := gainFor(d.JumpInGain, n)

	for i := range e.set.clips {
		c := &e.set.clips[i]

		e.mixClip(c, d.JumpOutPlayhead, l, r, startStopFor(c, info, ss), out)

		g := in
		if c.StartFrame >= d.JumpInDeclickStart {
			g = nil
		}
		e.mixClip(c, d.JumpInPlayhead, l, r, nil, g)
	}
}

// drain applies every queued update in order.
func (e *Engine) drain() {
	for {
		m, ok := e.updates.Pop()
		if !ok {
			return
		}

		switch m.kind {
		case replaceAll:
			old := e.set
			e.set = m.set
			if !e.retired.Push(old) {
				e.retireDrops.Add(1)
			}
		case patchOne:
			e.set.patch(m.clip)
		}
	}
}

// mixClip adds the part of c audible in [playhead, playhead+len(l)) to l
// and r. a and b are optional gain envelopes multiplied together.
func (e *Engine) mixClip(c *Clip, playhead tempo.Frames, l, r, a, b []float32) {
	if c.Placement.PCM == nil || !c.overlaps(playhead, len(l)) {
		return
	}

	// [lo, hi) is the overlap in block coordinates.
	lo := int(max(c.StartFrame-playhead, 0))
	hi := int(min(c.EndFrame-playhead, tempo.Frames(len(l))))

	sl := e.scratchL[:hi-lo]
	sr := e.scratchR[:hi-lo]

	src := playhead + tempo.Frames(lo) - c.StartFrame + c.OffsetFrames
	c.Placement.PCM.FillStereo(int64(src), c.OffsetSubFrame, sl, sr)

	applyFades(c, playhead+tempo.Frames(lo), sl, sr)

	dl := l[lo:hi]
	dr := r[lo:hi]

	switch {
	case a == nil && b == nil:
		for i := range sl {
			dl[i] += sl[i]
			dr[i] += sr[i]
		}
	case b == nil:
		accumulate(dl, dr, sl, sr, a[lo:hi])
	case a == nil:
		accumulate(dl, dr, sl, sr, b[lo:hi])
	default:
		ga := a[lo:hi]
		gb := b[lo:hi]
		for i := range sl {
			g := float32(ga[i] * gb[i])
			dl[i] += float32(sl[i] * g)
			dr[i] += float32(sr[i] * g)
		}
	}
}

// accumulate adds src*g to dst. The conversions keep the product rounded on
// its own so the sum does not depend on fused multiply-add.
func accumulate(dl, dr, sl, sr, g []float32) {
	for i := range sl {
		dl[i] += float32(sl[i] * g[i])
		dr[i] += float32(sr[i] * g[i])
	}
}

// applyFades scales l and r, which hold the clip frames starting at the
// timeline frame first, by the clip's linear fade envelopes.
func applyFades(c *Clip, first tempo.Frames, l, r []float32) {
	if c.FadeInEndFrame > c.StartFrame && first < c.FadeInEndFrame {
		span := float32(c.FadeInEndFrame - c.StartFrame)
		end := min(int(c.FadeInEndFrame-first), len(l))
		for i := range end {
			g := float32(first+tempo.Frames(i)-c.StartFrame) / span
			l[i] *= g
			r[i] *= g
		}
	}

	if c.EndFrame > c.FadeOutStartFrame && first+tempo.Frames(len(l)) > c.FadeOutStartFrame {
		span := float32(c.EndFrame - c.FadeOutStartFrame)
		for i := max(int(c.FadeOutStartFrame-first), 0); i < len(l); i++ {
			g := float32(c.EndFrame-first-tempo.Frames(i)) / span
			l[i] *= g
			r[i] *= g
		}
	}
}

// startStopFor returns the start/stop envelope to apply to c, or nil when
// the clip starts at or after the point where playback began.
func startStopFor(c *Clip, info *ProcInfo, ss []float32) []float32 {
	if ss == nil {
		return nil
	}
	if info.Playing && c.StartFrame >= info.Declick.StartDeclickStart {
		return nil
	}
	return ss
}

func gainFor(g []float32, n int) []float32 {
	if len(g) < n {
		return nil
	}
	return g[:n]
}
