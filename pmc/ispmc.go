// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

// Package pmc implements potential maximal clique (PMC) membership
// testing and the incremental PMC enumeration algorithm of
// Bouchitté & Todinca, "Listing all potential maximal cliques of a
// graph" (2000).
package pmc

import (
	"github.com/dorimedini/MinTriangulationsEnumeration/graph"
	"github.com/dorimedini/MinTriangulationsEnumeration/nodeset"
)

// IsPMC reports whether k is a potential maximal clique of g: a vertex
// set that is a maximal clique in some minimal triangulation of g.
// It implements Theorem 8 of Bouchitté & Todinca (2000):
//
//  1. Let C_1, ..., C_p be the connected components of g \ k, and
//     S_i = AdjacentTo(C_i, k).
//  2. If any S_i == k, C_i is a full component and k is not a PMC.
//  3. Otherwise k is a PMC iff, for every pair x != y in k, either
//     (x,y) is an edge of g, or x and y both lie in some S_i — the
//     completion of every S_i into a clique would make k a clique.
//
// IsPMC runs in O(n·m): computing the components and their boundaries
// is linear in the graph size, and the pairwise check for each x
// pre-collects the S_i containing x once, then resolves each y via
// binary search.
func IsPMC(k nodeset.Set, g graph.View) bool {
	k = nodeset.Of(k...)

	components, err := g.Components(k)
	if err != nil {
		return false
	}

	boundaries := make([]nodeset.Set, len(components))
	for i, c := range components {
		s := g.AdjacentTo(c, k)
		if s.Equal(k) {
			// c is a full component associated with k: no
			// minimal triangulation can make k a maximal
			// clique, since c itself would need to merge into it.
			return false
		}
		boundaries[i] = s
	}

	for i, x := range k {
		var containingX []nodeset.Set
		for _, s := range boundaries {
			if s.Contains(x) {
				containingX = append(containingX, s)
			}
		}
		for _, y := range k[i+1:] {
			if adj, _ := g.Adjacent(x, y); adj {
				continue
			}
			if !anyContains(containingX, y) {
				return false
			}
		}
	}
	return true
}

func anyContains(sets []nodeset.Set, y nodeset.Node) bool {
	for _, s := range sets {
		if s.Contains(y) {
			return true
		}
	}
	return false
}
