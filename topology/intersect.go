package topology

import (
	"math"

	"github.com/katalvlaran/cadrecon/core"
)

// epsilon is the 2D coincidence tolerance for topology construction, in
// drawing units.
const epsilon = 1e-4

// intersectSegments computes the segment-segment intersection point of
// s1 and s2 via the perp-dot formulation: given
// p = s1.a, r = s1.b - s1.a, q = s2.a, s = s2.b - s2.a, let
// rxs = perp(r, s). Parallel (or nearly so) segments report no
// intersection. Otherwise t and u locate the intersection along each
// segment's parametric direction; the segments actually cross (within
// epsilon slack at the endpoints) iff both lie in [-epsilon, 1+epsilon].
func intersectSegments(s1, s2 rawSegment) (core.Vec2, bool) {
	p, r := s1.a, s1.b.Sub(s1.a)
	q, s := s2.a, s2.b.Sub(s2.a)

	rxs := core.PerpDot(r, s)
	if math.Abs(rxs) < epsilon {
		return core.Vec2{}, false
	}

	qp := q.Sub(p)
	t := core.PerpDot(qp, s) / rxs
	u := core.PerpDot(qp, r) / rxs

	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return core.Vec2{}, false
	}

	return p.Add(r.Scale(t)), true
}
