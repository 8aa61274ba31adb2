package core

// ViewPlane tags which of the three orthographic projections a View
// represents.
type ViewPlane int

const (
	// PlaneXY is the top view: contributes global (x, y).
	PlaneXY ViewPlane = iota
	// PlaneXZ is the front view: contributes global (x, z) as local (x, y).
	PlaneXZ
	// PlaneYZ is the right-side view: contributes global (y, z) as local (x, y).
	PlaneYZ
)

// String renders the plane's conventional name, used in log lines and
// diagnostics.
func (p ViewPlane) String() string {
	switch p {
	case PlaneXY:
		return "XY(top)"
	case PlaneXZ:
		return "XZ(front)"
	case PlaneYZ:
		return "YZ(right)"
	default:
		return "unknown"
	}
}

// Vertex2D is one unique 2D vertex of a View's planar topology. ID is
// the vertex's dense index into the owning View.Vertices slice and is
// stable for the life of the View.
type Vertex2D struct {
	ID    int
	Point Vec2
}

// Edge2D is one edge of a View's planar topology, referencing its
// endpoints by vertex ID. OriginatingEntityID, when present, names the
// raw entity the edge (or the segment it was split from) came from.
type Edge2D struct {
	ID                  int
	Start, End          int
	HasOriginatingEntity bool
	OriginatingEntityID  uint64
}

// View holds one orthographic projection: the raw entities the view
// partitioner assigned to it, and the planar topology (vertices, edges)
// the topologizer derives from them.
//
// Invariants: Vertices is deduplicated within EPSILON; no edge has
// Start == End; no two distinct edges share the same unordered
// endpoint pair (the edge set is simple); vertex IDs are stable once
// assigned.
type View struct {
	Plane       ViewPlane
	RawEntities []Entity2D
	Vertices    []Vertex2D
	Edges       []Edge2D
}

// NewView returns an empty View for the given plane.
func NewView(plane ViewPlane) View {
	return View{Plane: plane}
}

// HasEdge reports whether an edge exists between vertex ids a and b,
// in either direction. Used by the 3D edge selector (S5) to test
// whether a candidate 3D edge's projection is supported by this view.
func (v *View) HasEdge(a, b int) bool {
	if a == b {
		// A 3D edge that degenerates to a point in this view is valid
		// support for that view.
		return true
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, e := range v.Edges {
		s, t := e.Start, e.End
		if s > t {
			s, t = t, s
		}
		if s == lo && t == hi {
			return true
		}
	}
	return false
}

// EdgeSet builds a (min,max) → struct{} lookup set over the view's
// edges, letting S5 test membership in O(1) instead of scanning Edges
// per pair as HasEdge does. Built once per view per reconstruction.
func (v *View) EdgeSet() map[[2]int]struct{} {
	set := make(map[[2]int]struct{}, len(v.Edges))
	for _, e := range v.Edges {
		s, t := e.Start, e.End
		if s > t {
			s, t = t, s
		}
		set[[2]int{s, t}] = struct{}{}
	}
	return set
}

// HasEdgeIn tests set-membership edge support (including the
// degenerate same-vertex case), given a pre-built EdgeSet.
func HasEdgeIn(set map[[2]int]struct{}, a, b int) bool {
	if a == b {
		return true
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	_, ok := set[[2]int{lo, hi}]
	return ok
}
