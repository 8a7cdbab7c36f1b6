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

func TestInducedPreservesLabels(t *testing.T) {
	g := fourCycle()
	sg := Induced(g, nodeset.Of(0, 1, 3))

	assert.Equal(t, 3, sg.N())
	assert.True(t, sg.Nodes().Equal(nodeset.Of(0, 1, 3)))

	neighbors, err := sg.Neighbors(0)
	require.NoError(t, err)
	// In the parent, 0's neighbors are {1,3}; 2 is excluded from sg, but
	// since 2 is not a neighbor of 0 here the set is unaffected.
	assert.True(t, neighbors.Equal(nodeset.Of(1, 3)))
}

func TestInducedDropsEdgesToExcludedNodes(t *testing.T) {
	g := fourCycle()
	sg := Induced(g, nodeset.Of(0, 1, 2))

	neighbors, err := sg.Neighbors(0)
	require.NoError(t, err)
	// 0's only neighbor retained in sg is 1 (3 was excluded).
	assert.True(t, neighbors.Equal(nodeset.Of(1)))
	assert.Equal(t, 2, sg.M())
}

func TestInducedNodeOutsideRetainIsInvalid(t *testing.T) {
	g := fourCycle()
	sg := Induced(g, nodeset.Of(0, 1))
	_, err := sg.Neighbors(2)
	assert.Error(t, err)
}

func TestInducedComponents(t *testing.T) {
	g := fourCycle()
	sg := Induced(g, nodeset.Of(0, 1, 3))
	components, err := sg.Components(nodeset.Of(0))
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.True(t, components[0].Equal(nodeset.Of(1)))
	assert.True(t, components[1].Equal(nodeset.Of(3)))
}
