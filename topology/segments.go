package topology

import "github.com/katalvlaran/cadrecon/core"

// rawSegment is one exploded straight segment, tagged with the drawing
// entity it came from so edges can carry provenance.
type rawSegment struct {
	a, b      core.Vec2
	entityID  uint64
	hasEntity bool
}

// explodeSegments extracts straight segments from a view's raw entities.
// Only lines and polylines contribute segments; circles, arcs, and
// beziers carry no topology and are ignored here (their bounding boxes
// already did their job in the view partitioner). A polyline with N
// vertices yields N-1 segments, or N if closed; consecutive coincident
// polyline vertices yield a degenerate zero-length segment that Build
// drops once both of its endpoints snap to the same vertex.
func explodeSegments(entities []core.Entity2D) []rawSegment {
	var segs []rawSegment
	for _, e := range entities {
		switch e.Primitive.Kind {
		case core.PrimitiveLine:
			segs = append(segs, rawSegment{a: e.Primitive.Line.A, b: e.Primitive.Line.B, entityID: e.ID, hasEntity: true})
		case core.PrimitivePolyline:
			verts := e.Primitive.Polyline.Vertices
			n := len(verts)
			if n < 2 {
				continue
			}
			for i := 0; i < n; i++ {
				j := i + 1
				if j == n {
					if !e.Primitive.Polyline.Closed {
						break
					}
					j = 0
				}
				segs = append(segs, rawSegment{a: verts[i].Pos, b: verts[j].Pos, entityID: e.ID, hasEntity: true})
			}
		}
	}
	return segs
}
