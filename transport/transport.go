// SPDX-License-Identifier: EPL-2.0

package transport

import (
	"fmt"

	"github.com/ik5/cliptrack/tempo"
	"github.com/ik5/cliptrack/timeline"
)

// DefaultDeclick is the ramp length used for start/stop and loop jumps.
const DefaultDeclick tempo.Seconds = 0.005

// Transport is a minimal host transport: a playhead, play/stop with a gain
// ramp and an optional loop region crossed with a crossfade.
//
// A Transport is not safe for concurrent use. Drive it from the audio
// callback and forward control requests to that goroutine.
type Transport struct {
	sampleRate    int
	maxFrames     int
	declickFrames int

	playhead tempo.Frames
	playing  bool

	// Start/stop ramp. level moves toward target by step per frame.
	level    float32
	target   float32
	step     float32
	startRef tempo.Frames

	loop      bool
	loopStart tempo.Frames
	loopEnd   tempo.Frames

	// Jump crossfade. fadePos counts frames since the jump; outHead is the
	// read position of the fading-out material at the start of the next
	// block.
	fading   bool
	fadePos  int
	outHead  tempo.Frames
	inTarget tempo.Frames

	// A Seek made while a crossfade runs waits here until it ends.
	seekPending bool
	seekTarget  tempo.Frames

	info    timeline.ProcInfo
	ssGain  []float32
	outGain []float32
	inGain  []float32
}

// New creates a stopped transport at frame 0. maxFrames bounds the block
// size passed to Next.
func New(sampleRate, maxFrames int, declick tempo.Seconds) (*Transport, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", sampleRate, ErrInvalidSampleRate)
	}
	if maxFrames <= 0 {
		return nil, fmt.Errorf("max frames %d: %w", maxFrames, ErrInvalidMaxFrames)
	}

	d := max(int(declick.ToNearestFrameRound(sampleRate)), 0)

	step := float32(1)
	if d > 0 {
		step = 1 / float32(d)
	}

	return &Transport{
		sampleRate:    sampleRate,
		maxFrames:     maxFrames,
		declickFrames: d,
		step:          step,
		ssGain:        make([]float32, maxFrames),
		outGain:       make([]float32, maxFrames),
		inGain:        make([]float32, maxFrames),
	}, nil
}

// SampleRate returns the rate the transport counts frames at.
func (t *Transport) SampleRate() int { return t.sampleRate }

// DeclickFrames returns the ramp length in frames.
func (t *Transport) DeclickFrames() int { return t.declickFrames }

// Playhead returns the frame the next block starts at. A Seek made during a
// crossfade is not reflected until the crossfade ends.
func (t *Transport) Playhead() tempo.Frames { return t.playhead }

// Playing reports whether playback was requested. A stop ramp may still be
// audible after Stop.
func (t *Transport) Playing() bool { return t.playing }

// Play starts playback from the current playhead with a fade-in.
func (t *Transport) Play() {
	if t.playing {
		return
	}
	t.playing = true
	t.target = 1
	t.startRef = t.playhead
}

// Stop ends playback with a fade-out. The playhead keeps moving until the
// fade is over.
func (t *Transport) Stop() {
	if !t.playing {
		return
	}
	t.playing = false
	t.target = 0
}

// Seek moves the playhead. While audible the move is crossfaded like a loop
// jump. A Seek issued while a crossfade is still running is applied by the
// first Next after it ends; a later Seek replaces a pending one.
func (t *Transport) Seek(frame tempo.Frames) {
	if t.fading && t.audible() {
		t.seekPending = true
		t.seekTarget = frame
		return
	}
	t.seekPending = false
	t.seek(frame)
}

func (t *Transport) seek(frame tempo.Frames) {
	if t.audible() {
		t.startFade(t.playhead, frame)
	}
	t.playhead = frame
	if t.playing {
		t.startRef = frame
	}
}

// SetLoop enables looping over [start, end). The region must be long enough
// for a full block plus the crossfade so that at most one jump happens per
// block.
func (t *Transport) SetLoop(start, end tempo.Frames) error {
	if start < 0 || end <= start {
		return fmt.Errorf("loop %d..%d: %w", start, end, ErrInvalidLoop)
	}
	if int64(end-start) < int64(t.maxFrames+t.declickFrames) {
		return fmt.Errorf("loop %d..%d shorter than %d frames: %w",
			start, end, t.maxFrames+t.declickFrames, ErrLoopTooShort)
	}

	t.loop = true
	t.loopStart = start
	t.loopEnd = end

	return nil
}

// ClearLoop disables looping.
func (t *Transport) ClearLoop() { t.loop = false }

// Loop returns the loop region and whether it is enabled.
func (t *Transport) Loop() (tempo.Frames, tempo.Frames, bool) {
	return t.loopStart, t.loopEnd, t.loop
}

func (t *Transport) audible() bool {
	return t.playing || t.level > 0
}

func (t *Transport) startFade(out, in tempo.Frames) {
	t.fading = true
	t.fadePos = 0
	t.outHead = out
	t.inTarget = in
}

// Next describes the next block of up to frames frames and advances the
// playhead. The returned ProcInfo and its gain slices are reused by the
// following call.
func (t *Transport) Next(frames int) *timeline.ProcInfo {
	n := min(max(frames, 0), t.maxFrames)

	if t.seekPending && !(t.fading && t.audible()) {
		t.seekPending = false
		t.seek(t.seekTarget)
	}

	info := &t.info
	*info = timeline.ProcInfo{
		Playhead: t.playhead,
		Frames:   n,
		Playing:  t.playing,
	}

	if !t.audible() {
		t.fading = false
		return info
	}

	if t.level != t.target {
		info.Declick.StartStopActive = true
		info.Declick.StartDeclickStart = t.startRef
		t.fillStartStop(t.ssGain[:n])
		info.Declick.StartStopGain = t.ssGain[:n]
	}

	// k is the block frame where the loop jump happens, or -1. A block that
	// ends exactly on the loop end jumps at k == n: it plays out unchanged
	// and the next block starts at the loop start with the crossfade.
	k := -1
	if t.loop && n > 0 && t.playhead <= t.loopEnd && t.playhead+tempo.Frames(n) >= t.loopEnd {
		k = int(t.loopEnd - t.playhead)
	}

	if k >= 0 {
		t.fading = true
		t.fadePos = -k
		t.outHead = t.playhead
		t.inTarget = t.loopStart
	}

	if t.fading {
		d := &info.Declick
		d.JumpActive = true
		d.JumpOutPlayhead = t.outHead
		d.JumpOutGain = t.outGain[:n]
		d.JumpInDeclickStart = t.inTarget
		d.JumpInGain = t.inGain[:n]
		// Block frame -fadePos lines up with inTarget.
		d.JumpInPlayhead = t.inTarget + tempo.Frames(t.fadePos)
		t.fillCrossfade(n)

		t.outHead += tempo.Frames(n)
		t.fadePos += n
		if t.fadePos >= t.declickFrames {
			t.fading = false
		}
	}

	if k >= 0 {
		t.playhead = t.loopStart + tempo.Frames(n-k)
	} else {
		t.playhead += tempo.Frames(n)
	}

	return info
}

func (t *Transport) fillStartStop(g []float32) {
	for i := range g {
		g[i] = t.level
		switch {
		case t.level < t.target:
			t.level = min(t.level+t.step, t.target)
		case t.level > t.target:
			t.level = max(t.level-t.step, t.target)
		}
	}
}

func (t *Transport) fillCrossfade(n int) {
	for i := range n {
		j := t.fadePos + i
		switch {
		case j < 0:
			t.outGain[i] = 1
			t.inGain[i] = 0
		case j >= t.declickFrames:
			t.outGain[i] = 0
			t.inGain[i] = 1
		default:
			x := float32(j) / float32(t.declickFrames)
			t.outGain[i] = 1 - x
			t.inGain[i] = x
		}
	}
}
