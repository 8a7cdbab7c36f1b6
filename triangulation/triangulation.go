// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

// Package triangulation declares the interface boundary between the PMC
// core and a triangulation-enumeration collaborator (MCS-M, LB-Triang,
// or any other chordal-completion algorithm). No implementation ships
// here: triangulation enumeration is an external concern the core only
// consumes, the way gonum/graph/encoding declares codec interfaces
// without shipping every format.
package triangulation

import "github.com/dorimedini/MinTriangulationsEnumeration/nodeset"

// Triangulation is a chordal completion of some graph, exposing its
// maximal cliques. A PMC of the original graph is, by definition, a
// maximal clique of some minimal Triangulation of it.
type Triangulation interface {
	MaximalCliques() []nodeset.Set
}

// Enumerator produces every triangulation of a graph that a
// collaborator cares to enumerate (e.g. every minimal triangulation, for
// cross-validating PMC enumeration against the union of their maximal
// cliques).
type Enumerator interface {
	Enumerate(g Viewer) ([]Triangulation, error)
}

// Viewer is the minimal read surface Enumerate needs from a graph. It is
// declared locally (rather than importing the graph package's View)
// so this boundary package has no dependency on the core's concrete
// graph representation.
type Viewer interface {
	N() int
	Nodes() nodeset.Set
	Neighbors(v nodeset.Node) (nodeset.Set, error)
}
