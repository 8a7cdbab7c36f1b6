// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

// Package nodeset provides canonical, comparable containers for graph
// node labels: a strictly increasing Set and an ordered set of Sets.
//
// Sets are kept as sorted slices rather than maps so that equality,
// union and intersection are simple linear merges and so that a Set has
// a total order, letting SetSet deduplicate and iterate deterministically
// without hashing.
package nodeset

import (
	"sort"
	"strconv"
	"strings"
)

// Node is an integer node label. Labels are stable under subgraph
// restriction: a node keeps its label when a graph is restricted to an
// induced subgraph.
type Node int

// Set is a strictly increasing sequence of Nodes. The zero value is the
// empty set. Values of Set are treated as immutable by every method
// below: each returns a new Set rather than mutating the receiver.
type Set []Node

// Of returns the canonical Set containing exactly the given nodes.
func Of(nodes ...Node) Set {
	if len(nodes) == 0 {
		return nil
	}
	s := append(Set(nil), nodes...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	out := s[:0]
	for i, n := range s {
		if i == 0 || n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}

// Contains reports whether n is a member of s.
func (s Set) Contains(n Node) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= n })
	return i < len(s) && s[i] == n
}

// Add returns the Set obtained by inserting n into s, or s itself
// (unmodified) if n is already a member.
func (s Set) Add(n Node) Set {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= n })
	if i < len(s) && s[i] == n {
		return s
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, n)
	out = append(out, s[i:]...)
	return out
}

// Equal reports whether s and t contain the same nodes.
func (s Set) Equal(t Set) bool {
	if len(s) != len(t) {
		return false
	}
	for i, n := range s {
		if t[i] != n {
			return false
		}
	}
	return true
}

// Less reports whether s sorts before t under the lexicographic total
// order used to canonicalize a SetSet: shorter common prefixes compare
// element-wise, and if one set is a prefix of the other the shorter one
// sorts first.
func (s Set) Less(t Set) bool {
	n := len(s)
	if len(t) < n {
		n = len(t)
	}
	for i := 0; i < n; i++ {
		if s[i] != t[i] {
			return s[i] < t[i]
		}
	}
	return len(s) < len(t)
}

// Union returns the sorted union of s and t.
func (s Set) Union(t Set) Set {
	out := make(Set, 0, len(s)+len(t))
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			out = append(out, s[i])
			i++
		case s[i] > t[j]:
			out = append(out, t[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, t[j:]...)
	return out
}

// Intersect returns the sorted intersection of s and t.
func (s Set) Intersect(t Set) Set {
	var out Set
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			i++
		case s[i] > t[j]:
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	return out
}

// Minus returns the sorted set difference s \ t.
func (s Set) Minus(t Set) Set {
	var out Set
	i, j := 0, 0
	for i < len(s) {
		if j < len(t) && t[j] < s[i] {
			j++
			continue
		}
		if j < len(t) && t[j] == s[i] {
			i++
			j++
			continue
		}
		out = append(out, s[i])
		i++
	}
	return out
}

// Len returns the number of nodes in s.
func (s Set) Len() int { return len(s) }

// Slice returns the underlying sorted slice of nodes. The caller must
// not mutate the result.
func (s Set) Slice() []Node { return s }

// String renders s as e.g. "{0,2,5}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(n)))
	}
	b.WriteByte('}')
	return b.String()
}
