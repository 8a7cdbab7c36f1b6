// Copyright ©2024 The MinTriangulationsEnumeration Authors. All rights
// reserved. Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package nodeset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestOfDeduplicatesAndSorts(t *testing.T) {
	got := Of(3, 1, 2, 1, 3)
	want := Set{1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Of() mismatch (-want +got):\n%s", diff)
	}
}

func TestOfEmpty(t *testing.T) {
	assert.Nil(t, Of())
}

func TestSetContains(t *testing.T) {
	s := Of(1, 3, 5)
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(0))
}

func TestSetAdd(t *testing.T) {
	s := Of(1, 3)
	assert.True(t, s.Add(2).Equal(Of(1, 2, 3)))
	assert.True(t, s.Add(1).Equal(s), "adding an existing member is a no-op")
}

func TestSetUnion(t *testing.T) {
	a := Of(1, 2, 5)
	b := Of(2, 3)
	assert.True(t, a.Union(b).Equal(Of(1, 2, 3, 5)))
}

func TestSetIntersect(t *testing.T) {
	a := Of(1, 2, 5)
	b := Of(2, 3, 5)
	assert.True(t, a.Intersect(b).Equal(Of(2, 5)))
}

func TestSetMinus(t *testing.T) {
	a := Of(1, 2, 3, 5)
	b := Of(2, 5)
	assert.True(t, a.Minus(b).Equal(Of(1, 3)))
}

func TestSetLess(t *testing.T) {
	cases := []struct {
		a, b Set
		want bool
	}{
		{Of(1), Of(2), true},
		{Of(1, 2), Of(1, 3), true},
		{Of(1), Of(1, 2), true},
		{Of(1, 2), Of(1), false},
		{Of(1, 2), Of(1, 2), false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, c.a.Less(c.b), "%v.Less(%v)", c.a, c.b)
	}
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "{1,2,3}", Of(1, 2, 3).String())
	assert.Equal(t, "{}", Of().String())
}
