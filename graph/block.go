// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package graph

import "github.com/dorimedini/MinTriangulationsEnumeration/nodeset"

// Block is a (separator, component) pair: S is a candidate separator
// and C is a full connected component of View \ S associated with it.
// Union is S ∪ C and Full reports membership in that union, giving
// O(1) containment checks without rescanning S and C.
//
// Block is produced by Blocks and filtered by FullBlocks; package pmc
// uses FullBlocks to find the full components associated with a
// separator.
type Block struct {
	S     nodeset.Set
	C     nodeset.Set
	Union nodeset.Set
	full  map[Node]bool
}

// Includes reports whether every node in nodes is in b.Union.
func (b Block) Includes(nodes nodeset.Set) bool {
	for _, n := range nodes {
		if !b.full[n] {
			return false
		}
	}
	return true
}

func newBlock(s, c nodeset.Set) Block {
	union := s.Union(c)
	full := make(map[Node]bool, len(union))
	for _, n := range union {
		full[n] = true
	}
	return Block{S: s, C: c, Union: union, full: full}
}

// Blocks returns, for each connected component C of v's nodes \ removed,
// the Block pairing C with its neighborhood-in-removed boundary: the
// subset of removed adjacent to some node of C. This is the
// decomposition underlying the "full component" notion used throughout
// separator enumeration (§4.2) and OneMoreVertex (§4.4): a component is
// full with respect to removed exactly when its Block's S equals
// removed.
func Blocks(v View, removed nodeset.Set) ([]Block, error) {
	components, err := v.Components(removed)
	if err != nil {
		return nil, err
	}
	blocks := make([]Block, len(components))
	for i, c := range components {
		blocks[i] = newBlock(v.AdjacentTo(c, removed), c)
	}
	return blocks, nil
}

// FullBlocks filters Blocks to those whose separator boundary equals S
// exactly (i.e. C is a full component associated with S).
func FullBlocks(v View, s nodeset.Set) ([]Block, error) {
	blocks, err := Blocks(v, s)
	if err != nil {
		return nil, err
	}
	full := blocks[:0]
	for _, b := range blocks {
		if b.S.Equal(s) {
			full = append(full, b)
		}
	}
	return full, nil
}
