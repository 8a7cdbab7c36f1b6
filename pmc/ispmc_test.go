// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package pmc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dorimedini/MinTriangulationsEnumeration/graph"
	"github.com/dorimedini/MinTriangulationsEnumeration/nodeset"
)

func fourCycle() *graph.Graph {
	g := graph.New(4)
	g.MustAddEdge(0, 1)
	g.MustAddEdge(1, 2)
	g.MustAddEdge(2, 3)
	g.MustAddEdge(3, 0)
	return g
}

// triangleOnStilts is the graph from spec.md scenario S5: n=5, edges
// (0,3),(3,2),(3,4),(2,4),(1,4).
func triangleOnStilts() *graph.Graph {
	g := graph.New(5)
	g.MustAddEdge(0, 3)
	g.MustAddEdge(3, 2)
	g.MustAddEdge(3, 4)
	g.MustAddEdge(2, 4)
	g.MustAddEdge(1, 4)
	return g
}

func TestIsPMCFourCycleMaximalCliques(t *testing.T) {
	cases := []nodeset.Set{
		nodeset.Of(0, 1, 2),
		nodeset.Of(0, 1, 3),
		nodeset.Of(0, 2, 3),
		nodeset.Of(1, 2, 3),
	}
	g := fourCycle()
	for _, k := range cases {
		assert.Truef(t, IsPMC(k, g), "%v should be a PMC of the 4-cycle", k)
	}
}

func TestIsPMCFourCycleRejectsFullComponentSeparator(t *testing.T) {
	// {0,2} is a minimal separator: both {1} and {3} are full
	// components w.r.t it, so it is not a PMC.
	assert.False(t, IsPMC(nodeset.Of(0, 2), fourCycle()))
}

func TestIsPMCFourCycleRejectsEdgeWithFullComponent(t *testing.T) {
	// (0,1) is an edge, but {2,3} is a full component w.r.t. {0,1}.
	assert.False(t, IsPMC(nodeset.Of(0, 1), fourCycle()))
}

func TestIsPMCTriangleOnStilts(t *testing.T) {
	g := triangleOnStilts()
	for _, k := range []nodeset.Set{nodeset.Of(0, 3), nodeset.Of(2, 3, 4), nodeset.Of(1, 4)} {
		assert.Truef(t, IsPMC(k, g), "%v should be a PMC", k)
	}
	assert.False(t, IsPMC(nodeset.Of(0, 1), g))
}

func TestIsPMCCompleteGraph(t *testing.T) {
	g := graph.New(4)
	g.AddClique(nodeset.Of(0, 1, 2, 3))
	assert.True(t, IsPMC(nodeset.Of(0, 1, 2, 3), g))
	assert.False(t, IsPMC(nodeset.Of(0, 1, 2), g), "a proper subset of K4 is not a PMC: {3} is a full component")
}

func TestIsPMCEdgelessGraph(t *testing.T) {
	g := graph.New(3)
	assert.True(t, IsPMC(nodeset.Of(0), g))
	assert.False(t, IsPMC(nodeset.Of(0, 1), g), "two isolated vertices never form a PMC together")
}
