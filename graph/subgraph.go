// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package graph

import "github.com/dorimedini/MinTriangulationsEnumeration/nodeset"

// Subgraph is a read-only view of a Graph restricted to a vertex
// subset. It preserves the parent's node labels: a node v that is a
// member of the subgraph keeps the label it had in the parent Graph, so
// node sets computed against a Subgraph compose directly with node sets
// computed against its parent or siblings of it (the property the PMC
// algorithm's incremental construction relies on).
//
// A Subgraph owns only a reference to its parent and the sorted list of
// retained labels; it does not copy any adjacency data.
type Subgraph struct {
	parent *Graph
	retain nodeset.Set
	m      int
}

// Induced returns the induced subgraph of parent restricted to retain.
// retain need not be sorted or deduplicated on entry.
func Induced(parent *Graph, retain nodeset.Set) *Subgraph {
	retain = nodeset.Of(retain...)
	sg := &Subgraph{parent: parent, retain: retain}
	for _, v := range retain {
		neighbors, _ := parent.Neighbors(v)
		sg.m += len(neighbors.Intersect(retain))
	}
	sg.m /= 2
	return sg
}

func (sg *Subgraph) valid(v Node) bool { return sg.retain.Contains(v) }

// N returns the number of nodes retained in sg.
func (sg *Subgraph) N() int { return len(sg.retain) }

// M returns the number of edges induced within sg.
func (sg *Subgraph) M() int { return sg.m }

// Nodes returns the sorted set of retained labels.
func (sg *Subgraph) Nodes() nodeset.Set { return sg.retain }

// Neighbors returns the neighbors of v within sg, restricted to the
// retained vertex set.
func (sg *Subgraph) Neighbors(v Node) (nodeset.Set, error) {
	if !sg.valid(v) {
		return nil, &InvalidNodeError{Node: v, N: sg.parent.n}
	}
	neighbors, _ := sg.parent.Neighbors(v)
	return neighbors.Intersect(sg.retain), nil
}

// Degree returns the degree of v within sg.
func (sg *Subgraph) Degree(v Node) (int, error) {
	neighbors, err := sg.Neighbors(v)
	if err != nil {
		return 0, err
	}
	return len(neighbors), nil
}

// Adjacent reports whether u and v are adjacent within sg.
func (sg *Subgraph) Adjacent(u, v Node) (bool, error) {
	if !sg.valid(u) {
		return false, &InvalidNodeError{Node: u, N: sg.parent.n}
	}
	if !sg.valid(v) {
		return false, &InvalidNodeError{Node: v, N: sg.parent.n}
	}
	return sg.parent.Adjacent(u, v)
}

// AdjacentTo returns {k ∈ K \ C : ∃ c ∈ C, (c,k) ∈ E(sg)}, sorted.
func (sg *Subgraph) AdjacentTo(c, k nodeset.Set) nodeset.Set {
	return adjacentTo(sg, c, k)
}

// Components returns the connected components of sg's nodes \ removed.
func (sg *Subgraph) Components(removed nodeset.Set) ([]nodeset.Set, error) {
	for _, v := range removed {
		if !sg.valid(v) {
			return nil, &InvalidNodeError{Node: v, N: sg.parent.n}
		}
	}
	visited := make(map[Node]bool, len(sg.retain))
	for _, v := range removed {
		visited[v] = true
	}
	var components []nodeset.Set
	for _, seed := range sg.retain {
		if visited[seed] {
			continue
		}
		var component nodeset.Set
		queue := []Node{seed}
		visited[seed] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			component = append(component, v)
			neighbors, _ := sg.parent.Neighbors(v)
			for _, u := range neighbors.Intersect(sg.retain) {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		components = append(components, nodeset.Of(component...))
	}
	return components, nil
}
