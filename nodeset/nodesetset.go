// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package nodeset

import (
	"sort"
	"strings"
)

// SetSet is a set of Sets backed by a slice kept sorted under Set.Less.
// Membership is an O(log N) binary search; Insert and Remove find their
// position the same way but then shift the slice tail, which is O(N).
// Iteration order is the same total order, so two SetSets built from the
// same elements in any order compare equal element-for-element.
//
// The zero value is an empty SetSet ready to use; NewSetSet returns one.
type SetSet struct {
	sets []Set
}

// NewSetSet returns an empty SetSet.
func NewSetSet() *SetSet {
	return &SetSet{}
}

// search returns the index of s in ss.sets, or the index at which it
// would be inserted to keep the slice sorted, and whether it was found.
func (ss *SetSet) search(s Set) (int, bool) {
	i := sort.Search(len(ss.sets), func(i int) bool { return !ss.sets[i].Less(s) })
	if i < len(ss.sets) && ss.sets[i].Equal(s) {
		return i, true
	}
	return i, false
}

// Contains reports whether s is a member of ss.
func (ss *SetSet) Contains(s Set) bool {
	_, ok := ss.search(s)
	return ok
}

// Insert adds s to ss, reporting whether s was not already present.
func (ss *SetSet) Insert(s Set) bool {
	i, ok := ss.search(s)
	if ok {
		return false
	}
	ss.sets = append(ss.sets, nil)
	copy(ss.sets[i+1:], ss.sets[i:])
	ss.sets[i] = s
	return true
}

// Remove deletes s from ss, if present.
func (ss *SetSet) Remove(s Set) {
	i, ok := ss.search(s)
	if !ok {
		return
	}
	ss.sets = append(ss.sets[:i], ss.sets[i+1:]...)
}

// Len returns the number of sets in ss.
func (ss *SetSet) Len() int { return len(ss.sets) }

// All returns the member Sets in ascending order. The caller must not
// mutate the result.
func (ss *SetSet) All() []Set { return ss.sets }

// Union returns a new SetSet containing every element of ss and other.
func (ss *SetSet) Union(other *SetSet) *SetSet {
	out := NewSetSet()
	out.sets = make([]Set, len(ss.sets))
	copy(out.sets, ss.sets)
	for _, s := range other.sets {
		out.Insert(s)
	}
	return out
}

// Clone returns a shallow copy of ss.
func (ss *SetSet) Clone() *SetSet {
	out := NewSetSet()
	out.sets = append([]Set(nil), ss.sets...)
	return out
}

// Equal reports whether ss and other contain the same Sets.
func (ss *SetSet) Equal(other *SetSet) bool {
	if len(ss.sets) != len(other.sets) {
		return false
	}
	for i, s := range ss.sets {
		if !s.Equal(other.sets[i]) {
			return false
		}
	}
	return true
}

// String renders ss as e.g. "{{0,1},{2}}".
func (ss *SetSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range ss.sets {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s.String())
	}
	b.WriteByte('}')
	return b.String()
}
