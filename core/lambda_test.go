package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cadrecon/core"
)

func TestThetaEdgeKeyCanonical(t *testing.T) {
	assert.Equal(t, [2]int{1, 3}, core.ThetaEdge{A: 1, B: 3}.Key())
	assert.Equal(t, [2]int{1, 3}, core.ThetaEdge{A: 3, B: 1}.Key())
}

func TestThetaSetDedupesRegardlessOfOrder(t *testing.T) {
	ts := core.NewThetaSet()
	ts.Add(0, 1)
	ts.Add(1, 0)
	ts.Add(2, 3)

	assert.Equal(t, 2, ts.Len())
}

func TestThetaSetSortedOrder(t *testing.T) {
	ts := core.NewThetaSet()
	ts.Add(2, 3)
	ts.Add(0, 5)
	ts.Add(0, 1)

	sorted := ts.Sorted()
	assert.Equal(t, []core.ThetaEdge{
		{A: 0, B: 1},
		{A: 0, B: 5},
		{A: 2, B: 3},
	}, sorted)
}
