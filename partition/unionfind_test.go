package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFindStartsDisjoint(t *testing.T) {
	uf := newUnionFind(5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, uf.find(i))
	}
}

func TestUnionFindMergesAndFindsCommonRoot(t *testing.T) {
	uf := newUnionFind(5)
	assert.True(t, uf.union(0, 1))
	assert.True(t, uf.union(1, 2))
	assert.Equal(t, uf.find(0), uf.find(2))
	assert.NotEqual(t, uf.find(0), uf.find(3))
}

func TestUnionFindSecondUnionIsNoop(t *testing.T) {
	uf := newUnionFind(3)
	assert.True(t, uf.union(0, 1))
	assert.False(t, uf.union(0, 1))
	assert.False(t, uf.union(1, 0))
}

func TestUnionFindGroups(t *testing.T) {
	uf := newUnionFind(4)
	uf.union(0, 1)
	uf.union(2, 3)

	groups := uf.groups()
	assert.Len(t, groups, 2)

	var sizes []int
	for _, members := range groups {
		sizes = append(sizes, len(members))
	}
	assert.ElementsMatch(t, []int{2, 2}, sizes)
}
