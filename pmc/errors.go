// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package pmc

import (
	"fmt"

	"github.com/dorimedini/MinTriangulationsEnumeration/nodeset"
)

// InvalidStateError is returned when a PMCEnumerator method is called in
// a state that forbids it (e.g. SetAlgorithm after Get has started).
type InvalidStateError struct {
	Op    string
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("pmc: %s is not legal in state %s", e.Op, e.State)
}

// InvalidSeparatorError is returned by SetMinimalSeparators when a
// supplied set does not have the shape of a minimal separator: G\S must
// have at least two full components associated with S.
type InvalidSeparatorError struct {
	Set nodeset.Set
}

func (e *InvalidSeparatorError) Error() string {
	return fmt.Sprintf("pmc: %v is not a minimal separator of the graph", e.Set)
}
