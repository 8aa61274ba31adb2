package partition

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/cadrecon/core"
)

const (
	// boxExpansion is the proximity inflation applied to each entity's
	// bounding box before clustering.
	boxExpansion = 5.0
	// mergeDistance is the maximum gap between two (already expanded)
	// cluster boxes that still counts as "close enough to fuse".
	mergeDistance = 1.0
	// rtreeMinBranch/rtreeMaxBranch are conventional R-tree fanout
	// bounds; the index here only ever holds a few thousand entries
	// (one per surviving cluster per round), so fanout tuning has no
	// observable effect beyond query constant factors.
	rtreeMinBranch = 8
	rtreeMaxBranch = 32
	// degenerateRectEpsilon floors a zero-width/height box dimension so
	// rtreego.NewRect (which requires strictly positive side lengths)
	// never rejects a point-like entity's bounding box.
	degenerateRectEpsilon = 1e-9
)

// clusterBox is the Spatial wrapper rtreego indexes: the current
// (expanded) bounding box of one disjoint-set cluster, tagged with the
// cluster's union-find root id.
type clusterBox struct {
	root int
	box  core.BBox2
}

// Bounds implements rtreego.Spatial.
func (c *clusterBox) Bounds() *rtreego.Rect {
	w := c.box.Width()
	if w < degenerateRectEpsilon {
		w = degenerateRectEpsilon
	}
	h := c.box.Height()
	if h < degenerateRectEpsilon {
		h = degenerateRectEpsilon
	}
	rect, err := rtreego.NewRect(rtreego.Point{c.box.Min.X, c.box.Min.Y}, []float64{w, h})
	if err != nil {
		// Only NewRect's length-positivity check can fail here, and both
		// lengths are floored above; this path is unreachable in practice.
		rect, _ = rtreego.NewRect(rtreego.Point{c.box.Min.X, c.box.Min.Y}, []float64{degenerateRectEpsilon, degenerateRectEpsilon})
	}
	return rect
}

// mergeByProximity runs a fixed-point box-merge: boxes start as each
// entity's bounding box expanded by boxExpansion, and any two boxes
// whose gap is below mergeDistance are iteratively fused (taking the
// union) until no more merges happen.
//
// An R-tree spatial index replaces the naive O(N²) pairwise scan with a
// query per cluster per round. Observable output — the final partition
// of entity indices into groups — is identical to the naive scan,
// because membership is still decided by the exact DistanceTo check
// below, not by the index.
func mergeByProximity(entities []core.Entity2D) [][]int {
	n := len(entities)
	if n == 0 {
		return nil
	}

	uf := newUnionFind(n)
	boxes := make([]core.BBox2, n)
	for i, e := range entities {
		boxes[i] = e.BBox().Expand(boxExpansion)
	}

	for {
		merged := false

		tree := rtreego.NewTree(2, rtreeMinBranch, rtreeMaxBranch)
		roots := uf.groups()
		rootBox := make(map[int]core.BBox2, len(roots))
		for root, members := range roots {
			box := core.NewEmptyBBox2()
			for _, m := range members {
				box = box.Union(boxes[m])
			}
			rootBox[root] = box
			tree.Insert(&clusterBox{root: root, box: box})
		}

		for root, box := range rootBox {
			query := box.Expand(mergeDistance)
			w, h := query.Width(), query.Height()
			if w < degenerateRectEpsilon {
				w = degenerateRectEpsilon
			}
			if h < degenerateRectEpsilon {
				h = degenerateRectEpsilon
			}
			rect, err := rtreego.NewRect(rtreego.Point{query.Min.X, query.Min.Y}, []float64{w, h})
			if err != nil {
				continue
			}

			for _, hit := range tree.SearchIntersect(rect) {
				cand := hit.(*clusterBox)
				if cand.root == root {
					continue
				}
				if uf.find(root) == uf.find(cand.root) {
					continue
				}
				if box.DistanceTo(cand.box) < mergeDistance {
					uf.union(root, cand.root)
					merged = true
				}
			}
		}

		// Boxes grow with every union, so the next round re-derives
		// rootBox from scratch at the top of the loop; stop once a full
		// round makes no new merge.
		if !merged {
			break
		}
	}

	groups := uf.groups()
	out := make([][]int, 0, len(groups))
	for _, members := range groups {
		out = append(out, members)
	}
	return out
}
