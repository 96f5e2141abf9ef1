// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Change switches the tempo to BPM starting at beat At.
type Change struct {
	At  MusicalTime
	BPM float64
}

type segment struct {
	start     MusicalTime
	startSecs Seconds
	secsPer   float64 // seconds per beat
}

// Map is a piecewise-constant tempo map at a fixed sample rate.
type Map struct {
	sampleRate int
	segments   []segment
}

// NewMap builds a map starting at bpm on beat zero. Changes may be given in
// any order; a change at beat zero replaces the initial tempo.
func NewMap(sampleRate int, bpm float64, changes ...Change) (*Map, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if !validBPM(bpm) {
		return nil, fmt.Errorf("initial tempo %v: %w", bpm, ErrInvalidBPM)
	}

	sorted := slices.Clone(changes)
	slices.SortStableFunc(sorted, func(a, b Change) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})

	m := &Map{
		sampleRate: sampleRate,
		segments:   []segment{{start: 0, startSecs: 0, secsPer: 60 / bpm}},
	}

	for _, c := range sorted {
		if c.At < 0 || math.IsNaN(float64(c.At)) || math.IsInf(float64(c.At), 0) {
			return nil, fmt.Errorf("change at %v: %w", c.At, ErrInvalidChange)
		}
		if !validBPM(c.BPM) {
			return nil, fmt.Errorf("change at %v to %v: %w", c.At, c.BPM, ErrInvalidBPM)
		}

		last := &m.segments[len(m.segments)-1]
		if c.At == last.start {
			// Later changes on the same beat win.
			last.secsPer = 60 / c.BPM
			continue
		}

		startSecs := last.startSecs + Seconds(float64(c.At-last.start)*last.secsPer)
		m.segments = append(m.segments, segment{
			start:     c.At,
			startSecs: startSecs,
			secsPer:   60 / c.BPM,
		})
	}

	return m, nil
}

func validBPM(bpm float64) bool {
	return bpm > 0 && !math.IsInf(bpm, 0) && !math.IsNaN(bpm)
}

// SampleRate returns the frame rate the map converts to.
func (m *Map) SampleRate() int { return m.sampleRate }

// BPMAt returns the tempo in effect at t.
func (m *Map) BPMAt(t MusicalTime) float64 {
	return 60 / m.segments[m.segmentAtBeat(t)].secsPer
}

// MusicalToSeconds converts a timeline position to seconds. Positions before
// beat zero extrapolate the initial tempo.
func (m *Map) MusicalToSeconds(t MusicalTime) Seconds {
	seg := m.segments[m.segmentAtBeat(t)]
	return seg.startSecs + Seconds(float64(t-seg.start)*seg.secsPer)
}

// SecondsToMusical is the inverse of MusicalToSeconds.
func (m *Map) SecondsToMusical(s Seconds) MusicalTime {
	i := sort.Search(len(m.segments), func(i int) bool {
		return m.segments[i].startSecs > s
	}) - 1
	if i < 0 {
		i = 0
	}

	seg := m.segments[i]
	return seg.start + MusicalTime(float64(s-seg.startSecs)/seg.secsPer)
}

// MusicalToNearestFrameRound converts a timeline position to the nearest
// sample frame.
func (m *Map) MusicalToNearestFrameRound(t MusicalTime) Frames {
	return m.SecondsToNearestFrameRound(m.MusicalToSeconds(t))
}

// SecondsToNearestFrameRound converts seconds to the nearest sample frame.
func (m *Map) SecondsToNearestFrameRound(s Seconds) Frames {
	return s.ToNearestFrameRound(m.sampleRate)
}

func (m *Map) segmentAtBeat(t MusicalTime) int {
	i := sort.Search(len(m.segments), func(i int) bool {
		return m.segments[i].start > t
	}) - 1
	if i < 0 {
		return 0
	}
	return i
}
