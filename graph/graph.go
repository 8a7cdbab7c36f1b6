// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

// Package graph provides an immutable, simple, undirected graph and the
// induced-subgraph view used to restrict it to a vertex subset while
// preserving the original node labels.
//
// A Graph is built once (via New and AddEdge) and is not mutated while
// any enumerator holds a reference to it or to a Subgraph of it.
package graph

import (
	"container/list"

	"github.com/dorimedini/MinTriangulationsEnumeration/nodeset"
)

// Node is a graph vertex label, an integer in [0, n).
type Node = nodeset.Node

// View is the read-only query surface shared by Graph and Subgraph. It
// lets algorithms that only need neighbor/component queries (separator
// enumeration, the PMC membership test) operate uniformly over a whole
// graph or any induced restriction of it.
type View interface {
	// N returns the number of nodes in the view.
	N() int
	// M returns the number of edges in the view.
	M() int
	// Neighbors returns the sorted set of nodes adjacent to v within
	// the view.
	Neighbors(v Node) (nodeset.Set, error)
	// Degree returns len(Neighbors(v)).
	Degree(v Node) (int, error)
	// Adjacent reports whether u and v are adjacent within the view.
	Adjacent(u, v Node) (bool, error)
	// Components returns the connected components of the subgraph
	// induced by (the view's nodes) \ removed, in deterministic
	// discovery order (ascending smallest-id seed).
	Components(removed nodeset.Set) ([]nodeset.Set, error)
	// AdjacentTo returns the nodes of k \ c adjacent to some node of c.
	// The result is always a subset of k.
	AdjacentTo(c, k nodeset.Set) nodeset.Set
	// Nodes returns the sorted set of nodes in the view.
	Nodes() nodeset.Set
}

var (
	_ View = (*Graph)(nil)
	_ View = (*Subgraph)(nil)
)

// Graph is an immutable simple undirected graph on nodes [0, n).
type Graph struct {
	n         int
	m         int
	neighbors []nodeset.Set
}

// New returns an edgeless Graph on n nodes.
func New(n int) *Graph {
	if n < 0 {
		panic("graph: negative node count")
	}
	return &Graph{n: n, neighbors: make([]nodeset.Set, n)}
}

// AddEdge adds the edge (u, v) to g, if it does not already exist. It
// reports an *InvalidNodeError if u or v is out of range. Adding a
// self-loop (u == v) is a no-op, matching the simple-graph invariant
// (no self-loops, no multi-edges).
func (g *Graph) AddEdge(u, v Node) error {
	if !g.valid(u) {
		return &InvalidNodeError{Node: u, N: g.n}
	}
	if !g.valid(v) {
		return &InvalidNodeError{Node: v, N: g.n}
	}
	if u == v || g.neighbors[u].Contains(v) {
		return nil
	}
	g.neighbors[u] = g.neighbors[u].Add(v)
	g.neighbors[v] = g.neighbors[v].Add(u)
	g.m++
	return nil
}

// MustAddEdge adds the edge (u, v), panicking if either node is
// out of range. It exists for test fixtures and other call sites that
// know their node indices are in range by construction.
func (g *Graph) MustAddEdge(u, v Node) {
	if err := g.AddEdge(u, v); err != nil {
		panic(err)
	}
}

// AddClique adds every missing edge between members of nodes, making
// nodes a clique in g. It implements the "completion" step used by the
// PMC membership test and by test fixtures that build chordal graphs.
func (g *Graph) AddClique(nodes nodeset.Set) {
	for i, u := range nodes {
		for _, v := range nodes[i+1:] {
			g.MustAddEdge(u, v)
		}
	}
}

func (g *Graph) valid(v Node) bool { return v >= 0 && int(v) < g.n }

// N returns the number of nodes in g.
func (g *Graph) N() int { return g.n }

// M returns the number of edges in g.
func (g *Graph) M() int { return g.m }

// Nodes returns the sorted set {0, ..., n-1}.
func (g *Graph) Nodes() nodeset.Set {
	if g.n == 0 {
		return nil
	}
	nodes := make(nodeset.Set, g.n)
	for i := range nodes {
		nodes[i] = Node(i)
	}
	return nodes
}

// Neighbors returns the sorted set of nodes adjacent to v.
func (g *Graph) Neighbors(v Node) (nodeset.Set, error) {
	if !g.valid(v) {
		return nil, &InvalidNodeError{Node: v, N: g.n}
	}
	return g.neighbors[v], nil
}

// Degree returns the degree of v.
func (g *Graph) Degree(v Node) (int, error) {
	if !g.valid(v) {
		return 0, &InvalidNodeError{Node: v, N: g.n}
	}
	return len(g.neighbors[v]), nil
}

// Adjacent reports whether u and v are adjacent in g.
func (g *Graph) Adjacent(u, v Node) (bool, error) {
	if !g.valid(u) {
		return false, &InvalidNodeError{Node: u, N: g.n}
	}
	if !g.valid(v) {
		return false, &InvalidNodeError{Node: v, N: g.n}
	}
	return g.neighbors[u].Contains(v), nil
}

// AdjacentTo returns {k ∈ K \ C : ∃ c ∈ C, (c,k) ∈ E}, sorted.
func (g *Graph) AdjacentTo(c, k nodeset.Set) nodeset.Set {
	return adjacentTo(g, c, k)
}

// adjacentTo is shared by Graph and Subgraph: it computes the
// neighborhood of c restricted to k, using whichever View's own
// neighbor sets are authoritative for the caller's vertex labels.
func adjacentTo(v View, c, k nodeset.Set) nodeset.Set {
	var union nodeset.Set
	for _, u := range c {
		neighbors, err := v.Neighbors(u)
		if err != nil {
			continue
		}
		union = union.Union(neighbors)
	}
	return union.Intersect(k).Minus(c)
}

// Components returns the connected components of g \ removed, found by
// breadth-first search seeded in ascending node order.
func (g *Graph) Components(removed nodeset.Set) ([]nodeset.Set, error) {
	for _, v := range removed {
		if !g.valid(v) {
			return nil, &InvalidNodeError{Node: v, N: g.n}
		}
	}
	return bfsComponents(g.n, removed, func(v Node) nodeset.Set { return g.neighbors[v] }), nil
}

// bfsComponents finds the connected components of {0,...,n-1} \ removed
// using the adjacency reported by neighborsOf, seeding a fresh
// breadth-first search at the smallest unvisited node each time.
func bfsComponents(n int, removed nodeset.Set, neighborsOf func(Node) nodeset.Set) []nodeset.Set {
	visited := make([]bool, n)
	for _, v := range removed {
		visited[v] = true
	}
	var components []nodeset.Set
	for seed := 0; seed < n; seed++ {
		if visited[seed] {
			continue
		}
		var component nodeset.Set
		queue := list.New()
		queue.PushBack(Node(seed))
		visited[seed] = true
		for queue.Len() > 0 {
			front := queue.Remove(queue.Front()).(Node)
			component = append(component, front)
			for _, u := range neighborsOf(front) {
				if !visited[u] {
					visited[u] = true
					queue.PushBack(u)
				}
			}
		}
		sortedComponent := nodeset.Of(component...)
		components = append(components, sortedComponent)
	}
	return components
}
