package lift

import (
	"math"
	"sort"

	"github.com/katalvlaran/cadrecon/align"
	"github.com/katalvlaran/cadrecon/core"
)

// matchTolerance is the cross-view coordinate tolerance, in drawing
// units.
const matchTolerance = 1.0

// sortedVertex pairs a vertex's point with its vertex id, so a match
// can still name the original vertex after sorting strips array order.
type sortedVertex struct {
	id int
	p  core.Vec2
}

// Build matches vertices across the three aligned views and returns
// every Λ-row that agrees within matchTolerance on both shared axes.
//
// The Front (XZ) and Right (YZ) vertex arrays are pre-sorted by their
// shared axis so each Top-view vertex only has to binary-search a
// window instead of scanning every candidate.
func Build(vXY, vXZ, vYZ core.View, shift align.Shift) []core.LambdaRow {
	xzSorted := finiteSorted(vXZ.Vertices)
	yzSorted := finiteSorted(vYZ.Vertices)

	var rows []core.LambdaRow
	for _, v1 := range vXY.Vertices {
		if !v1.Point.Finite() {
			continue
		}
		p := v1.Point.Add(shift.XY) // global (x, y)

		lo := lowerBound(xzSorted, p.X-matchTolerance)
		for _, v2 := range xzSorted[lo:] {
			if v2.p.X > p.X+matchTolerance {
				break
			}
			pXZ := v2.p // global (x, z) = (v2.p.X, v2.p.Y)

			targetYZLocalX := p.Y - shift.YZ.X
			loY := lowerBound(yzSorted, targetYZLocalX-matchTolerance)
			for _, v3 := range yzSorted[loY:] {
				if v3.p.X > targetYZLocalX+matchTolerance {
					break
				}
				pYZ := v3.p.Add(shift.YZ) // global (y, z) = (v3.p.X, v3.p.Y)
				if math.Abs(pXZ.Y-pYZ.Y) > matchTolerance {
					continue
				}

				rows = append(rows, core.LambdaRow{
					Point: core.Vec3{X: p.X, Y: p.Y, Z: pXZ.Y},
					VXY:   v1.ID,
					VXZ:   v2.id,
					VYZ:   v3.id,
				})
			}
		}
	}
	return rows
}

// finiteSorted filters out non-finite vertices and sorts the rest by
// their local X coordinate, the axis both XZ and YZ share with a
// neighboring view.
func finiteSorted(vertices []core.Vertex2D) []sortedVertex {
	out := make([]sortedVertex, 0, len(vertices))
	for _, v := range vertices {
		if v.Point.Finite() {
			out = append(out, sortedVertex{id: v.ID, p: v.Point})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].p.X < out[j].p.X })
	return out
}

// lowerBound returns the index of the first element whose X is >= x.
func lowerBound(sorted []sortedVertex, x float64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i].p.X >= x })
}
