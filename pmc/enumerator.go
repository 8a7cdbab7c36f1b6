// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package pmc

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dorimedini/MinTriangulationsEnumeration/graph"
	"github.com/dorimedini/MinTriangulationsEnumeration/nodeset"
	"github.com/dorimedini/MinTriangulationsEnumeration/separator"
)

// Algorithm selects a variant of the incremental PMC enumeration. Every
// variant produces the same final set of PMCs; they exist to
// cross-validate each other and to explore different scheduling
// strategies for the same computation.
type Algorithm int

const (
	// Normal iterates vertices 0..n-1 in order, single-threaded.
	Normal Algorithm = iota
	// Reverse iterates vertices n-1..0.
	Reverse
	// Ascending reorders each OneMoreVertex candidate sweep by
	// ascending NodeSet size before testing.
	Ascending
	// Descending reorders each OneMoreVertex candidate sweep by
	// descending NodeSet size before testing.
	Descending
	// Parallel runs the inner OneMoreVertex candidate sweep across a
	// worker pool, merging accepted candidates under a mutex.
	Parallel
)

type state int

const (
	fresh state = iota
	computing
	done
)

func (s state) String() string {
	switch s {
	case fresh:
		return "Fresh"
	case computing:
		return "Computing"
	default:
		return "Done"
	}
}

// PMCEnumerator computes the potential maximal cliques of a graph via
// the incremental one-more-vertex algorithm of Bouchitté & Todinca,
// adding one vertex at a time and lifting each intermediate PMC set to
// the next. The zero value is not usable; construct with New.
type PMCEnumerator struct {
	g         *graph.Graph
	algorithm Algorithm
	state     state
	timeLimit time.Duration
	outOfTime bool

	// msSupplied holds a caller-provided, shape-verified set of
	// minimal separators for the full graph, set via
	// SetMinimalSeparators. When present it replaces the final
	// iteration's separator computation instead of redoing work the
	// caller already has.
	msSupplied *nodeset.SetSet

	result *nodeset.SetSet
	ms     *nodeset.SetSet
}

// New returns a PMCEnumerator for g, in state Fresh.
func New(g *graph.Graph) *PMCEnumerator {
	return &PMCEnumerator{g: g, algorithm: Normal, state: fresh}
}

// SetAlgorithm selects the enumeration variant. It is only legal while
// the enumerator is Fresh.
func (e *PMCEnumerator) SetAlgorithm(a Algorithm) error {
	if e.state != fresh {
		return &InvalidStateError{Op: "SetAlgorithm", State: e.state.String()}
	}
	e.algorithm = a
	return nil
}

// SetMinimalSeparators supplies a precomputed set of minimal separators
// for the full graph, to be memoised and reused instead of recomputed
// by the final iteration. Each supplied set is verified (cheaply) to
// have the shape of a minimal separator: G\S must have at least two
// full components associated with S. Only legal while Fresh.
func (e *PMCEnumerator) SetMinimalSeparators(d *nodeset.SetSet) error {
	if e.state != fresh {
		return &InvalidStateError{Op: "SetMinimalSeparators", State: e.state.String()}
	}
	for _, s := range d.All() {
		blocks, err := graph.FullBlocks(e.g, s)
		if err != nil || len(blocks) < 2 {
			return &InvalidSeparatorError{Set: s}
		}
	}
	e.msSupplied = d
	return nil
}

// SetTimeLimit sets the wall-clock budget for Get. Zero (the default)
// means unlimited.
func (e *PMCEnumerator) SetTimeLimit(d time.Duration) {
	e.timeLimit = d
}

// IsOutOfTime reports whether the last Get call exhausted its time
// budget before completing, in which case its result is partial.
func (e *PMCEnumerator) IsOutOfTime() bool {
	return e.outOfTime
}

// Reset returns the enumerator to state Fresh for a new graph,
// discarding all prior configuration and memoised results.
func (e *PMCEnumerator) Reset(g *graph.Graph) {
	*e = PMCEnumerator{g: g, algorithm: Normal, state: fresh}
}

// GetMS returns the minimal separators of the full graph, a side effect
// of the last Get call. It is nil until Get has been called. After a Get
// that ran out of time it holds the minimal separators of the last
// induced subgraph processed, not of the full graph.
func (e *PMCEnumerator) GetMS() *nodeset.SetSet {
	return e.ms
}

// Get drives the enumerator from Fresh through Computing to Done,
// memoising and returning the PMCs of the graph. Calling Get again
// after Done returns the memoised result without recomputation. ctx is
// checked alongside the configured time limit so a caller can also
// cancel from outside; either cause sets IsOutOfTime and yields the
// sets found so far that are PMCs of the whole graph.
func (e *PMCEnumerator) Get(ctx context.Context) *nodeset.SetSet {
	if e.state == done {
		return e.result
	}
	e.state = computing

	if e.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, time.Now().Add(e.timeLimit))
		defer cancel()
	}

	n := e.g.N()
	if n == 0 {
		e.result = nodeset.NewSetSet()
		e.ms = nodeset.NewSetSet()
		e.state = done
		return e.result
	}

	order := e.vertexOrder(n)
	p := nodeset.NewSetSet()
	p.Insert(nodeset.Of(order[0]))
	d := nodeset.NewSetSet()
	retained := nodeset.Of(order[0])

	for i := 1; i < n; i++ {
		if ctx.Err() != nil {
			e.outOfTime = true
			break
		}
		a := order[i]
		retained = retained.Add(a)
		g1 := graph.Induced(e.g, retained)

		var d1 *nodeset.SetSet
		if i == n-1 && e.msSupplied != nil {
			d1 = e.msSupplied
		} else {
			d1 = separator.All(g1, separator.Uniform)
		}

		p = e.oneMoreVertex(ctx, g1, a, d, d1, p)
		d = d1
		if ctx.Err() != nil {
			e.outOfTime = true
			break
		}
	}

	if e.outOfTime {
		// p holds PMCs of an induced subgraph; keep those that are
		// also PMCs of the full graph.
		confirmed := nodeset.NewSetSet()
		for _, k := range p.All() {
			if IsPMC(k, e.g) {
				confirmed.Insert(k)
			}
		}
		p = confirmed
	}

	e.ms = d
	e.result = p
	e.state = done
	return p
}

// vertexOrder returns the order a_1..a_n in which OneMoreVertex
// introduces the graph's vertices.
func (e *PMCEnumerator) vertexOrder(n int) []nodeset.Node {
	order := make([]nodeset.Node, n)
	if e.algorithm == Reverse {
		for i := range order {
			order[i] = nodeset.Node(n - 1 - i)
		}
		return order
	}
	for i := range order {
		order[i] = nodeset.Node(i)
	}
	return order
}

// oneMoreVertex implements spec §4.4: lift P2, the PMCs of G2 = g1 minus
// a, to P1, the PMCs of g1 = G2 + a. d2 and d1 are the minimal
// separators of G2 and g1 respectively. ctx carries both external
// cancellation and, when SetTimeLimit was used, the configured
// deadline (Get installs it via context.WithDeadline before calling
// down), so every variant checks the same budget the same way.
func (e *PMCEnumerator) oneMoreVertex(ctx context.Context, g1 graph.View, a nodeset.Node, d2, d1, p2 *nodeset.SetSet) *nodeset.SetSet {
	deg, err := g1.Degree(a)
	if err == nil && deg == 0 {
		p1 := p2.Clone()
		p1.Insert(nodeset.Of(a))
		return p1
	}

	if e.algorithm == Parallel {
		return e.oneMoreVertexParallel(ctx, g1, a, d2, d1, p2)
	}
	return e.oneMoreVertexSequential(ctx, g1, a, d2, d1, p2)
}

func (e *PMCEnumerator) oneMoreVertexSequential(ctx context.Context, g1 graph.View, a nodeset.Node, d2, d1, p2 *nodeset.SetSet) *nodeset.SetSet {
	p1 := nodeset.NewSetSet()

	for _, k := range e.ordered(p2.All()) {
		if ctx.Err() != nil {
			break
		}
		if IsPMC(k, g1) {
			p1.Insert(k)
			continue
		}
		if ka := k.Add(a); IsPMC(ka, g1) {
			p1.Insert(ka)
		}
	}

	for _, s := range e.ordered(d1.All()) {
		if ctx.Err() != nil {
			break
		}
		if sa := s.Add(a); IsPMC(sa, g1) {
			p1.Insert(sa)
		}
		if s.Contains(a) || d2.Contains(s) {
			continue
		}
		blocks, err := graph.FullBlocks(g1, s)
		if err != nil {
			continue
		}
		for _, block := range blocks {
			for _, t := range d2.All() {
				u := s.Union(t.Intersect(block.C))
				if IsPMC(u, g1) {
					p1.Insert(u)
				}
			}
		}
	}

	return p1
}

// oneMoreVertexParallel is the Parallel variant: candidate generation
// and testing across P2 and D1 runs on a worker group of at most
// GOMAXPROCS concurrent goroutines, with accepted
// candidates merged into p1 under a mutex. The outer loop over i
// remains sequential; only this inner sweep parallelises.
func (e *PMCEnumerator) oneMoreVertexParallel(ctx context.Context, g1 graph.View, a nodeset.Node, d2, d1, p2 *nodeset.SetSet) *nodeset.SetSet {
	p1 := nodeset.NewSetSet()
	var mu sync.Mutex
	insert := func(k nodeset.Set) {
		mu.Lock()
		p1.Insert(k)
		mu.Unlock()
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))

	for _, k := range p2.All() {
		k := k
		grp.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if IsPMC(k, g1) {
				insert(k)
			}
			if ka := k.Add(a); IsPMC(ka, g1) {
				insert(ka)
			}
			return nil
		})
	}

	for _, s := range d1.All() {
		s := s
		grp.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if sa := s.Add(a); IsPMC(sa, g1) {
				insert(sa)
			}
			if s.Contains(a) || d2.Contains(s) {
				return nil
			}
			blocks, err := graph.FullBlocks(g1, s)
			if err != nil {
				return nil
			}
			for _, block := range blocks {
				for _, t := range d2.All() {
					u := s.Union(t.Intersect(block.C))
					if IsPMC(u, g1) {
						insert(u)
					}
				}
			}
			return nil
		})
	}

	grp.Wait()
	return p1
}

// ordered returns sets in e.algorithm's candidate-sweep order: as-is
// for Normal/Reverse/Parallel, by ascending or descending size for
// Ascending/Descending. Input is never mutated.
func (e *PMCEnumerator) ordered(sets []nodeset.Set) []nodeset.Set {
	if e.algorithm != Ascending && e.algorithm != Descending {
		return sets
	}
	out := append([]nodeset.Set(nil), sets...)
	sort.SliceStable(out, func(i, j int) bool {
		if e.algorithm == Ascending {
			return len(out[i]) < len(out[j])
		}
		return len(out[i]) > len(out[j])
	})
	return out
}
