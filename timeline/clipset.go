// SPDX-License-Identifier: EPL-2.0

package timeline

import "slices"

// clipSet holds clips ordered by ID with an index for O(1) patching.
//
// The Handle owns one clipSet as the authoritative copy. Every ReplaceAll
// message carries a separate clone whose ownership moves to the Engine.
type clipSet struct {
	clips []Clip
	index map[ClipID]int
}

func newClipSet(capacity int) *clipSet {
	return &clipSet{
		clips: make([]Clip, 0, capacity),
		index: make(map[ClipID]int, capacity),
	}
}

func (s *clipSet) len() int { return len(s.clips) }

func (s *clipSet) get(id ClipID) (*Clip, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.clips[i], true
}

// insert appends c. IDs grow monotonically, so appending keeps the order.
func (s *clipSet) insert(c Clip) {
	s.index[c.ID] = len(s.clips)
	s.clips = append(s.clips, c)
}

func (s *clipSet) remove(id ClipID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}

	s.clips = slices.Delete(s.clips, i, i+1)
	delete(s.index, id)
	for j := i; j < len(s.clips); j++ {
		s.index[s.clips[j].ID] = j
	}

	return true
}

// patch overwrites the clip with c.ID in place. Unknown IDs are ignored.
// patch never allocates.
func (s *clipSet) patch(c Clip) bool {
	i, ok := s.index[c.ID]
	if !ok {
		return false
	}
	s.clips[i] = c
	return true
}

func (s *clipSet) clone() *clipSet {
	out := &clipSet{
		clips: slices.Clone(s.clips),
		index: make(map[ClipID]int, len(s.index)),
	}
	if out.clips == nil {
		out.clips = []Clip{}
	}
	for id, i := range s.index {
		out.index[id] = i
	}
	return out
}
