package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cadrecon/core"
)

func square() core.View {
	v := core.NewView(core.PlaneXY)
	v.Vertices = []core.Vertex2D{
		{ID: 0, Point: core.Vec2{X: 0, Y: 0}},
		{ID: 1, Point: core.Vec2{X: 10, Y: 0}},
		{ID: 2, Point: core.Vec2{X: 10, Y: 10}},
		{ID: 3, Point: core.Vec2{X: 0, Y: 10}},
	}
	v.Edges = []core.Edge2D{
		{ID: 0, Start: 0, End: 1},
		{ID: 1, Start: 1, End: 2},
		{ID: 2, Start: 2, End: 3},
		{ID: 3, Start: 3, End: 0},
	}
	return v
}

func TestViewHasEdgeUndirected(t *testing.T) {
	v := square()
	assert.True(t, v.HasEdge(0, 1))
	assert.True(t, v.HasEdge(1, 0))
	assert.False(t, v.HasEdge(0, 2))
}

func TestViewHasEdgeDegenerateSameVertex(t *testing.T) {
	v := square()
	assert.True(t, v.HasEdge(2, 2))
}

func TestViewEdgeSetMatchesHasEdge(t *testing.T) {
	v := square()
	set := v.EdgeSet()
	assert.True(t, core.HasEdgeIn(set, 0, 1))
	assert.True(t, core.HasEdgeIn(set, 3, 0))
	assert.False(t, core.HasEdgeIn(set, 0, 2))
	assert.True(t, core.HasEdgeIn(set, 1, 1))
}

func TestViewPlaneString(t *testing.T) {
	assert.Equal(t, "XY(top)", core.PlaneXY.String())
	assert.Equal(t, "XZ(front)", core.PlaneXZ.String())
	assert.Equal(t, "YZ(right)", core.PlaneYZ.String())
}
