// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package graph

import "fmt"

// InvalidNodeError is returned when a caller passes a node outside
// [0, N()) to a Graph query, or a node it does not retain to a Subgraph
// query. N is the node count of the underlying Graph.
type InvalidNodeError struct {
	Node Node
	N    int
}

// Error satisfies the error interface.
func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("graph: invalid node %d for a view of a graph on %d nodes", e.Node, e.N)
}
