package core

import "sort"

// LambdaRow is one candidate 3D vertex recovered by the lifter (S4):
// a 3D point plus the ids of the three 2D vertices — one per view —
// whose coordinates agreed within MATCH_TOLERANCE after view
// alignment.
type LambdaRow struct {
	Point Vec3
	VXY   int // vertex id in the XY (top) view
	VXZ   int // vertex id in the XZ (front) view
	VYZ   int // vertex id in the YZ (right) view
}

// ThetaEdge is a candidate 3D edge: an unordered pair of LambdaRow
// indices, keyed by (min, max) so the same edge is never stored twice
// regardless of discovery order.
type ThetaEdge struct {
	A, B int
}

// Key returns the canonical (min, max) form, suitable as a map key.
func (t ThetaEdge) Key() [2]int {
	if t.A <= t.B {
		return [2]int{t.A, t.B}
	}
	return [2]int{t.B, t.A}
}

// ThetaSet is the set of candidate 3D edges produced by S5, keyed by
// (min, max) Lambda index pair.
type ThetaSet struct {
	m map[[2]int]struct{}
}

// NewThetaSet returns an empty ThetaSet.
func NewThetaSet() *ThetaSet {
	return &ThetaSet{m: make(map[[2]int]struct{})}
}

// Add inserts the edge (i, j), deduplicating on canonical key.
func (t *ThetaSet) Add(i, j int) {
	t.m[ThetaEdge{A: i, B: j}.Key()] = struct{}{}
}

// Len returns the number of distinct edges in the set.
func (t *ThetaSet) Len() int { return len(t.m) }

// Sorted returns the set's edges as a slice ordered by (i, j), so
// serialized output is reproducible regardless of discovery order.
func (t *ThetaSet) Sorted() []ThetaEdge {
	out := make([]ThetaEdge, 0, len(t.m))
	for k := range t.m {
		out = append(out, ThetaEdge{A: k[0], B: k[1]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}
