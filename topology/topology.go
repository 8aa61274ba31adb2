package topology

import "github.com/katalvlaran/cadrecon/core"

// Build runs stage S2 on a view: explode its raw entities into
// segments, intersect all pairs, split at the accumulated points, snap
// endpoints into a deduplicated vertex list, and emit a simple
// undirected edge set. It returns a new View with the same Plane and
// RawEntities but freshly populated Vertices and Edges.
func Build(v core.View) core.View {
	segs := explodeSegments(v.RawEntities)

	hits := make([][]core.Vec2, len(segs))
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if pt, ok := intersectSegments(segs[i], segs[j]); ok {
				hits[i] = append(hits[i], pt)
				hits[j] = append(hits[j], pt)
			}
		}
	}

	var finalSegs []rawSegment
	for i, seg := range segs {
		finalSegs = append(finalSegs, splitAtIntersections(seg, hits[i])...)
	}

	hash := newSpatialHash(epsilon)
	var edges []core.Edge2D
	for _, seg := range finalSegs {
		a := hash.vertexID(seg.a)
		b := hash.vertexID(seg.b)
		if a == b {
			continue
		}
		edges = append(edges, core.Edge2D{
			Start:                a,
			End:                  b,
			HasOriginatingEntity: seg.hasEntity,
			OriginatingEntityID:  seg.entityID,
		})
	}
	edges = dedupEdges(edges)
	for i := range edges {
		edges[i].ID = i
	}

	vertices := make([]core.Vertex2D, len(hash.points))
	for i, p := range hash.points {
		vertices[i] = core.Vertex2D{ID: i, Point: p}
	}

	out := core.NewView(v.Plane)
	out.RawEntities = v.RawEntities
	out.Vertices = vertices
	out.Edges = edges
	return out
}

// dedupEdges drops duplicate unordered endpoint pairs, keeping the first
// occurrence, so the emitted graph is simple: no two distinct edges
// share the same unordered endpoint pair.
func dedupEdges(edges []core.Edge2D) []core.Edge2D {
	seen := make(map[[2]int]struct{}, len(edges))
	out := make([]core.Edge2D, 0, len(edges))
	for _, e := range edges {
		key := [2]int{e.Start, e.End}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
