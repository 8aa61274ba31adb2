package topology

import (
	"math"
	"sort"

	"github.com/katalvlaran/cadrecon/core"
)

// splitAtIntersections cuts one segment at the intersection points
// accumulated against it: append its own two
// endpoints, sort everything by distance along the segment from a, drop
// consecutive duplicates within epsilon, and emit one sub-segment per
// surviving consecutive pair whose length exceeds epsilon. A segment
// with no recorded intersections is returned unchanged.
func splitAtIntersections(seg rawSegment, hits []core.Vec2) []rawSegment {
	if len(hits) == 0 {
		return []rawSegment{seg}
	}

	pts := make([]core.Vec2, 0, len(hits)+2)
	pts = append(pts, hits...)
	pts = append(pts, seg.a, seg.b)

	sort.Slice(pts, func(i, j int) bool {
		return pts[i].Dist(seg.a) < pts[j].Dist(seg.a)
	})

	var deduped []core.Vec2
	for _, p := range pts {
		if len(deduped) > 0 && deduped[len(deduped)-1].Dist(p) < epsilon {
			continue
		}
		deduped = append(deduped, p)
	}

	var out []rawSegment
	for i := 0; i+1 < len(deduped); i++ {
		a, b := deduped[i], deduped[i+1]
		if a.Dist(b) > epsilon {
			out = append(out, rawSegment{a: a, b: b, entityID: seg.entityID, hasEntity: seg.hasEntity})
		}
	}
	return out
}

// spatialHash buckets vertices by floor(coord/epsilon) so a nearby-point
// query only has to scan the 3x3 neighborhood of buckets around a
// candidate, rather than every vertex seen so far. Produces the same
// result as a linear snap search, just faster.
type spatialHash struct {
	cell    float64
	buckets map[[2]int64][]int
	points  []core.Vec2
}

func newSpatialHash(cell float64) *spatialHash {
	return &spatialHash{cell: cell, buckets: make(map[[2]int64][]int)}
}

func (h *spatialHash) key(p core.Vec2) [2]int64 {
	return [2]int64{int64(math.Floor(p.X / h.cell)), int64(math.Floor(p.Y / h.cell))}
}

// vertexID returns the index of an existing point within epsilon of p,
// or appends p as a new vertex and returns its new index.
func (h *spatialHash) vertexID(p core.Vec2) int {
	base := h.key(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			k := [2]int64{base[0] + dx, base[1] + dy}
			for _, idx := range h.buckets[k] {
				if h.points[idx].Dist(p) < epsilon {
					return idx
				}
			}
		}
	}

	idx := len(h.points)
	h.points = append(h.points, p)
	h.buckets[base] = append(h.buckets[base], idx)
	return idx
}
