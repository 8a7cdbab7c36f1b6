// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorimedini/MinTriangulationsEnumeration/nodeset"
)

func fourCycle() *Graph {
	g := New(4)
	g.MustAddEdge(0, 1)
	g.MustAddEdge(1, 2)
	g.MustAddEdge(2, 3)
	g.MustAddEdge(3, 0)
	return g
}

func TestNewEdgeless(t *testing.T) {
	g := New(3)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, 0, g.M())
}

func TestAddEdgeSymmetricAndDeduplicated(t *testing.T) {
	g := New(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1)) // duplicate, no-op
	require.NoError(t, g.AddEdge(1, 1)) // self-loop, no-op

	assert.Equal(t, 1, g.M())
	adj, err := g.Adjacent(0, 1)
	require.NoError(t, err)
	assert.True(t, adj)
	adj, err = g.Adjacent(1, 0)
	require.NoError(t, err)
	assert.True(t, adj, "adjacency must be symmetric")
}

func TestAddEdgeInvalidNode(t *testing.T) {
	g := New(2)
	err := g.AddEdge(0, 5)
	var invalid *InvalidNodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, Node(5), invalid.Node)
}

func TestDegreeAndNeighbors(t *testing.T) {
	g := fourCycle()
	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	neighbors, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.True(t, neighbors.Equal(nodeset.Of(1, 3)))
}

func TestNeighborsInvalidNode(t *testing.T) {
	g := New(2)
	_, err := g.Neighbors(7)
	assert.Error(t, err)
}

func TestComponentsNoRemoval(t *testing.T) {
	g := New(5)
	g.MustAddEdge(0, 1)
	g.MustAddEdge(3, 4)
	components, err := g.Components(nil)
	require.NoError(t, err)
	require.Len(t, components, 3)
	assert.True(t, components[0].Equal(nodeset.Of(0, 1)))
	assert.True(t, components[1].Equal(nodeset.Of(2)))
	assert.True(t, components[2].Equal(nodeset.Of(3, 4)))
}

func TestComponentsWithRemoval(t *testing.T) {
	g := fourCycle()
	components, err := g.Components(nodeset.Of(0, 2))
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.True(t, components[0].Equal(nodeset.Of(1)))
	assert.True(t, components[1].Equal(nodeset.Of(3)))
}

func TestAdjacentToIsSubsetOfK(t *testing.T) {
	g := fourCycle()
	adj := g.AdjacentTo(nodeset.Of(1), nodeset.Of(0, 2, 3))
	assert.True(t, adj.Equal(nodeset.Of(0, 2)))
}

func TestFullComponent(t *testing.T) {
	// Path 0-1-2: removing {1} leaves two components, {0} and {2},
	// each fully adjacent to {1}.
	g := New(3)
	g.MustAddEdge(0, 1)
	g.MustAddEdge(1, 2)
	components, err := g.Components(nodeset.Of(1))
	require.NoError(t, err)
	for _, c := range components {
		adj := g.AdjacentTo(c, nodeset.Of(1))
		assert.True(t, adj.Equal(nodeset.Of(1)), "component %v must be full w.r.t. {1}", c)
	}
}

func TestAddClique(t *testing.T) {
	g := New(4)
	g.AddClique(nodeset.Of(0, 1, 2))
	for _, pair := range [][2]Node{{0, 1}, {0, 2}, {1, 2}} {
		adj, err := g.Adjacent(pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, adj)
	}
	assert.Equal(t, 3, g.M())
	adj, err := g.Adjacent(0, 3)
	require.NoError(t, err)
	assert.False(t, adj)
}
