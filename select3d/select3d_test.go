package select3d

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cadrecon/core"
)

func square(plane core.ViewPlane) core.View {
	v := core.NewView(plane)
	v.Vertices = []core.Vertex2D{
		{ID: 0, Point: core.Vec2{X: 0, Y: 0}},
		{ID: 1, Point: core.Vec2{X: 1, Y: 0}},
		{ID: 2, Point: core.Vec2{X: 1, Y: 1}},
		{ID: 3, Point: core.Vec2{X: 0, Y: 1}},
	}
	v.Edges = []core.Edge2D{
		{ID: 0, Start: 0, End: 1},
		{ID: 1, Start: 1, End: 2},
		{ID: 2, Start: 2, End: 3},
		{ID: 3, Start: 3, End: 0},
	}
	return v
}

func TestBuildKeepsOnlyEdgesSupportedInAllViews(t *testing.T) {
	vXY, vXZ, vYZ := square(core.PlaneXY), square(core.PlaneXZ), square(core.PlaneYZ)

	var lambda []core.LambdaRow
	for i := 0; i < 4; i++ {
		lambda = append(lambda, core.LambdaRow{VXY: i, VXZ: i, VYZ: i})
	}

	theta := Build(lambda, vXY, vXZ, vYZ)
	assert.Equal(t, 4, theta.Len()) // only the square's own 4 edges survive all three views
}

func TestBuildRejectsUnsupportedProjection(t *testing.T) {
	vXY, vXZ, vYZ := square(core.PlaneXY), square(core.PlaneXZ), square(core.PlaneYZ)

	lambda := []core.LambdaRow{
		{VXY: 0, VXZ: 0, VYZ: 0},
		{VXY: 2, VXZ: 2, VYZ: 2}, // diagonal in XY, not an edge there
	}

	theta := Build(lambda, vXY, vXZ, vYZ)
	assert.Equal(t, 0, theta.Len())
}

func TestBuildAcceptsDegeneratePointProjection(t *testing.T) {
	vXY, vXZ, vYZ := square(core.PlaneXY), square(core.PlaneXZ), square(core.PlaneYZ)

	lambda := []core.LambdaRow{
		{VXY: 0, VXZ: 0, VYZ: 0},
		{VXY: 1, VXZ: 0, VYZ: 0}, // same XZ/YZ vertex: degenerate point in those views
	}

	theta := Build(lambda, vXY, vXZ, vYZ)
	assert.Equal(t, 1, theta.Len())
}
