package partition

import (
	"errors"
	"sort"

	"github.com/katalvlaran/cadrecon/core"
)

// ErrViewSeparationFailed is returned when fewer than three non-empty
// view groups can be identified after both the layer-tagging primary
// path and the spatial-clustering fallback.
var ErrViewSeparationFailed = errors.New("partition: fewer than three views could be identified")

// Partition splits a drawing's entities into the three view-role
// groups. It tries the primary layer-name path first; if that leaves
// all three views empty, it falls back to spatial clustering. Returns
// ErrViewSeparationFailed if the fallback ends with fewer than three
// non-empty groups; the layer-name path returns its views as found,
// even when one or two of them are empty.
func Partition(d core.Drawing) (xy, xz, yz core.View, report core.AnalysisReport, err error) {
	report.EntitiesTotal = len(d.Entities)

	xy, xz, yz = byLayer(d)
	if len(xy.RawEntities) > 0 || len(xz.RawEntities) > 0 || len(yz.RawEntities) > 0 {
		return xy, xz, yz, report, nil
	}

	report.UsedFallback = true
	xy, xz, yz, report, err = separateSpatially(d, report)
	return xy, xz, yz, report, err
}

// drawableIndices returns the indices of d.Entities that participate in
// clustering: every entity except dimensions and text.
func drawableIndices(d core.Drawing) []int {
	idx := make([]int, 0, len(d.Entities))
	for i, e := range d.Entities {
		if e.Kind == core.KindDimension || e.Kind == core.KindText {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

func separateSpatially(d core.Drawing, report core.AnalysisReport) (xy, xz, yz core.View, out core.AnalysisReport, err error) {
	out = report
	xy, xz, yz = core.NewView(core.PlaneXY), core.NewView(core.PlaneXZ), core.NewView(core.PlaneYZ)

	idx := drawableIndices(d)
	if len(idx) == 0 {
		return xy, xz, yz, out, ErrViewSeparationFailed
	}
	drawable := make([]core.Entity2D, len(idx))
	for i, di := range idx {
		drawable[i] = d.Entities[di]
	}

	groups := mergeByProximity(drawable) // [][]int into `drawable`

	groups = correctGroupCount(drawable, groups)

	if len(groups) != 3 {
		sort.Slice(groups, func(i, j int) bool { return len(groups[i]) > len(groups[j]) })
		if len(groups) > 3 {
			groups = groups[:3]
		} else {
			return xy, xz, yz, out, ErrViewSeparationFailed
		}
	}

	out.Clusters = make([]core.ClusterReport, len(groups))
	centers := make([]core.Vec2, len(groups))
	for gi, members := range groups {
		box := core.NewEmptyBBox2()
		sample := make([]uint64, 0, 5)
		for _, m := range members {
			box = box.Union(drawable[m].BBox())
			if len(sample) < 5 {
				sample = append(sample, drawable[m].ID)
			}
		}
		centers[gi] = box.Center()
		out.Clusters[gi] = core.ClusterReport{
			EntityCount:    len(members),
			BBox:           box,
			EntityIDSample: sample,
		}
	}

	topIdx, frontIdx, sideIdx := assignRoles(centers)

	for _, m := range groups[topIdx] {
		xy.RawEntities = append(xy.RawEntities, drawable[m])
	}
	for _, m := range groups[frontIdx] {
		xz.RawEntities = append(xz.RawEntities, drawable[m])
	}
	for _, m := range groups[sideIdx] {
		yz.RawEntities = append(yz.RawEntities, drawable[m])
	}

	return xy, xz, yz, out, nil
}

// correctGroupCount applies corrective clustering when mergeByProximity
// didn't land on exactly three groups:
//
//	1 group  -> k-means(k=3), heuristic-seeded
//	2 groups -> split the larger by k-means(k=2) along its major axis
//	>3 groups -> left as-is here; the caller truncates to the three
//	             largest after this function returns.
func correctGroupCount(entities []core.Entity2D, groups [][]int) [][]int {
	switch len(groups) {
	case 1:
		box := groupBBox(entities, groups[0])
		sub := kmeansOnIndices(entities, groups[0], seedK3(box))
		return sub
	case 2:
		largest, other := 0, 1
		if len(groups[1]) > len(groups[0]) {
			largest, other = 1, 0
		}
		box := groupBBox(entities, groups[largest])
		split := kmeansOnIndices(entities, groups[largest], seedK2(box))
		if len(split) == 2 {
			return append(split, groups[other])
		}
		return groups
	default:
		return groups
	}
}

// groupBBox returns the union bounding box of entities[members].
func groupBBox(entities []core.Entity2D, members []int) core.BBox2 {
	box := core.NewEmptyBBox2()
	for _, m := range members {
		box = box.Union(entities[m].BBox())
	}
	return box
}

// kmeansOnIndices runs kmeans over the subset entities[members] and
// translates the resulting local group indices back to the caller's
// index space (indices into entities, not into members).
func kmeansOnIndices(entities []core.Entity2D, members []int, seeds []core.Vec2) [][]int {
	sub := make([]core.Entity2D, len(members))
	for i, m := range members {
		sub[i] = entities[m]
	}
	localGroups := kmeans(sub, seeds)
	out := make([][]int, len(localGroups))
	for gi, local := range localGroups {
		mapped := make([]int, len(local))
		for i, li := range local {
			mapped[i] = members[li]
		}
		out[gi] = mapped
	}
	return out
}

// assignRoles assigns view roles by centroid position: the group with
// the greatest Y centroid is Top (XY); of the remaining two, the one
// with smaller X is Front (XZ), the other is Side (YZ). This encodes a
// third-angle layout only; distinguishing a first-angle layout would
// need a cross-view consistency check this heuristic doesn't attempt.
func assignRoles(centers []core.Vec2) (topIdx, frontIdx, sideIdx int) {
	order := []int{0, 1, 2}
	sort.Slice(order, func(i, j int) bool { return centers[order[i]].Y > centers[order[j]].Y })
	topIdx = order[0]

	rest := []int{order[1], order[2]}
	sort.Slice(rest, func(i, j int) bool { return centers[rest[i]].X < centers[rest[j]].X })
	frontIdx, sideIdx = rest[0], rest[1]
	return
}
