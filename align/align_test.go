package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cadrecon/core"
)

func viewWithVertices(plane core.ViewPlane, pts ...core.Vec2) core.View {
	v := core.NewView(plane)
	for i, p := range pts {
		v.Vertices = append(v.Vertices, core.Vertex2D{ID: i, Point: p})
	}
	return v
}

func TestComputeShiftFromCentroids(t *testing.T) {
	vXY := viewWithVertices(core.PlaneXY, core.Vec2{X: 0, Y: 0}, core.Vec2{X: 10, Y: 10})
	vXZ := viewWithVertices(core.PlaneXZ, core.Vec2{X: 5, Y: 0}, core.Vec2{X: 5, Y: 10})
	vYZ := viewWithVertices(core.PlaneYZ, core.Vec2{X: 5, Y: 0}, core.Vec2{X: 5, Y: 5})

	shift := Compute(vXY, vXZ, vYZ)

	// c_xy=(5,5) c_xz=(5,5) c_yz=(5,2.5)
	assert.InDelta(t, 0, shift.XY.X, 1e-9)
	assert.InDelta(t, 0, shift.XY.Y, 1e-9)
	assert.InDelta(t, 5-5, shift.YZ.X, 1e-9)
	assert.InDelta(t, 5-2.5, shift.YZ.Y, 1e-9)
}

func TestComputeNonzeroShift(t *testing.T) {
	vXY := viewWithVertices(core.PlaneXY, core.Vec2{X: 0, Y: 0})
	vXZ := viewWithVertices(core.PlaneXZ, core.Vec2{X: 100, Y: 0})
	vYZ := viewWithVertices(core.PlaneYZ, core.Vec2{X: 0, Y: 0})

	shift := Compute(vXY, vXZ, vYZ)
	assert.InDelta(t, 100, shift.XY.X, 1e-9)
	assert.Equal(t, 0.0, shift.XY.Y)
}

func TestCentroidEmptyViewIsOrigin(t *testing.T) {
	v := core.NewView(core.PlaneXY)
	shift := Compute(v, v, v)
	assert.Equal(t, core.Vec2{}, shift.XY)
	assert.Equal(t, core.Vec2{}, shift.YZ)
}
