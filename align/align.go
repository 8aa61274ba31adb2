package align

import "github.com/katalvlaran/cadrecon/core"

// Shift holds the per-view translations computed by Compute: ShiftXY is
// applied to XY vertices, ShiftYZ to YZ vertices. The XZ view is the
// reference frame and is never shifted.
type Shift struct {
	XY core.Vec2
	YZ core.Vec2
}

// Compute derives the translational offsets that bring the three views
// into a shared global (x, y, z) frame, using an unweighted vertex
// centroid heuristic:
//
//	shift_xy = (c_xz.x - c_xy.x, 0)                     // align XY's x to XZ's x
//	shift_yz = (c_xy.y - c_yz.x, c_xz.y - c_yz.y)        // YZ.x -> global y, YZ.y -> global z
//
// XZ supplies the reference frame, so it is never shifted.
func Compute(vXY, vXZ, vYZ core.View) Shift {
	cXY := centroid(vXY)
	cXZ := centroid(vXZ)
	cYZ := centroid(vYZ)

	return Shift{
		XY: core.Vec2{X: cXZ.X - cXY.X, Y: 0},
		YZ: core.Vec2{X: cXY.Y - cYZ.X, Y: cXZ.Y - cYZ.Y},
	}
}

// centroid returns the unweighted mean of a view's vertices, or the
// origin if the view has none.
func centroid(v core.View) core.Vec2 {
	if len(v.Vertices) == 0 {
		return core.Vec2{}
	}
	var sum core.Vec2
	for _, vx := range v.Vertices {
		sum = sum.Add(vx.Point)
	}
	n := float64(len(v.Vertices))
	return core.Vec2{X: sum.X / n, Y: sum.Y / n}
}
