// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

// Package separator enumerates the minimal separators of a graph view
// by successive generation: start from a seed batch derived from the
// graph's edges, then repeatedly saturate each discovered separator
// with one more of its own members to generate further candidates,
// until no new separator is found.
package separator

import (
	"container/list"
	"errors"
	"sort"

	"github.com/dorimedini/MinTriangulationsEnumeration/graph"
	"github.com/dorimedini/MinTriangulationsEnumeration/nodeset"
)

// ErrExhausted is returned by Next when called after HasNext reports
// false.
var ErrExhausted = errors.New("separator: iterator exhausted")

// Priority controls the order in which candidate separators are popped
// from the queue. It never changes the final set of separators
// produced, only the order Next returns them in.
type Priority int

const (
	// Uniform pops candidates in plain FIFO (generation) order.
	Uniform Priority = iota
	// AscendingSize pops smaller separators first within each
	// generation batch.
	AscendingSize
	// FillEdges pops separators requiring fewer fill edges to
	// complete into a clique first within each generation batch.
	FillEdges
)

// Enumerator lazily, non-duplicatingly enumerates the minimal
// separators of a graph.View. The zero value is not usable; construct
// with NewEnumerator.
type Enumerator struct {
	g        graph.View
	priority Priority
	queue    *list.List
	seen     *nodeset.SetSet
}

// NewEnumerator returns an Enumerator over the minimal separators of g,
// dequeuing candidates in the order priority specifies.
func NewEnumerator(g graph.View, priority Priority) *Enumerator {
	e := &Enumerator{
		g:        g,
		priority: priority,
		queue:    list.New(),
		seen:     nodeset.NewSetSet(),
	}
	e.enqueueBatch(e.seedCandidates())
	return e
}

// HasNext reports whether any undiscovered or unreturned separator
// remains in the queue.
func (e *Enumerator) HasNext() bool {
	return e.queue.Len() > 0
}

// Next returns the next minimal separator in priority order, expanding
// the queue with its children before returning. It returns
// ErrExhausted if HasNext is false.
func (e *Enumerator) Next() (nodeset.Set, error) {
	if e.queue.Len() == 0 {
		return nil, ErrExhausted
	}
	s := e.queue.Remove(e.queue.Front()).(nodeset.Set)
	e.expand(s)
	return s, nil
}

// seedCandidates implements spec step 1: for every edge (u,v) and every
// full component C of G \ N[v] containing a neighbor of u (and
// symmetrically with u and v swapped), N(C) is a candidate separator.
func (e *Enumerator) seedCandidates() []nodeset.Set {
	var candidates []nodeset.Set
	all := e.g.Nodes()
	for _, u := range all {
		nu, _ := e.g.Neighbors(u)
		for _, v := range nu {
			if v <= u {
				continue // visit each unordered edge once
			}
			candidates = append(candidates, e.seedFrom(u, v)...)
			candidates = append(candidates, e.seedFrom(v, u)...)
		}
	}
	return candidates
}

// seedFrom returns the candidates contributed by fixing v as the
// "closed neighborhood" endpoint and u as the endpoint whose neighbor
// must touch the component.
func (e *Enumerator) seedFrom(u, v nodeset.Node) []nodeset.Set {
	nv, _ := e.g.Neighbors(v)
	closed := nv.Add(v)
	components, _ := e.g.Components(closed)
	nu, _ := e.g.Neighbors(u)

	var out []nodeset.Set
	for _, c := range components {
		if len(c.Intersect(nu)) == 0 {
			continue
		}
		out = append(out, e.g.AdjacentTo(c, e.g.Nodes()))
	}
	return out
}

// expand implements the saturation step: for each x in s, every
// connected component C of G \ (s ∪ N(x)) yields N(C) as a candidate
// separator.
func (e *Enumerator) expand(s nodeset.Set) {
	var candidates []nodeset.Set
	for _, x := range s {
		nx, _ := e.g.Neighbors(x)
		removed := s.Union(nx)
		components, _ := e.g.Components(removed)
		for _, c := range components {
			candidates = append(candidates, e.g.AdjacentTo(c, e.g.Nodes()))
		}
	}
	e.enqueueBatch(candidates)
}

// enqueueBatch orders candidates per e.priority, then pushes those not
// already seen onto the queue, marking them seen. Ordering is scoped to
// a single batch (the seed batch, or one expand call's output): it
// never re-sorts the whole frontier, which would cost more than the
// final NodeSetSet result needs, since the set of separators produced
// is unaffected by pop order.
func (e *Enumerator) enqueueBatch(candidates []nodeset.Set) {
	switch e.priority {
	case AscendingSize:
		sort.SliceStable(candidates, func(i, j int) bool {
			return len(candidates[i]) < len(candidates[j])
		})
	case FillEdges:
		sort.SliceStable(candidates, func(i, j int) bool {
			return fillWeight(e.g, candidates[i]) < fillWeight(e.g, candidates[j])
		})
	}
	for _, c := range candidates {
		if e.seen.Insert(c) {
			e.queue.PushBack(c)
		}
	}
}

// fillWeight counts the edges missing from s that completing it into a
// clique would add.
func fillWeight(g graph.View, s nodeset.Set) int {
	missing := 0
	for i, u := range s {
		for _, v := range s[i+1:] {
			if adj, _ := g.Adjacent(u, v); !adj {
				missing++
			}
		}
	}
	return missing
}

// All drains e and returns every minimal separator found, as a
// NodeSetSet. It is a convenience for callers (e.g. the PMC
// enumerator) that want the whole set rather than lazy iteration.
func All(g graph.View, priority Priority) *nodeset.SetSet {
	e := NewEnumerator(g, priority)
	out := nodeset.NewSetSet()
	for e.HasNext() {
		s, err := e.Next()
		if err != nil {
			break
		}
		out.Insert(s)
	}
	return out
}
