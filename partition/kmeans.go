package partition

import (
	"math"

	"github.com/katalvlaran/cadrecon/core"
)

const (
	kmeansMaxIterations  = 10
	kmeansConvergenceTol = 0.1
)

// kmeans runs Lloyd's algorithm on entity bbox centroids for a fixed
// k, starting from the given seed centers. It returns the resulting
// non-empty clusters as slices of indices into entities, running at
// most kmeansMaxIterations rounds and stopping early once total
// centroid movement drops below kmeansConvergenceTol.
func kmeans(entities []core.Entity2D, seeds []core.Vec2) [][]int {
	k := len(seeds)
	if len(entities) == 0 || k == 0 {
		return nil
	}

	centers := append([]core.Vec2(nil), seeds...)
	assignments := make([]int, len(entities))
	centroids := make([]core.Vec2, len(entities))
	for i, e := range entities {
		centroids[i] = e.BBox().Center()
	}

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		for i, c := range centroids {
			best, bestDist := 0, math.Inf(1)
			for ki, center := range centers {
				d := c.Dist(center)
				if d < bestDist {
					bestDist, best = d, ki
				}
			}
			assignments[i] = best
		}

		sums := make([]core.Vec2, k)
		counts := make([]int, k)
		for i, c := range centroids {
			a := assignments[i]
			sums[a] = sums[a].Add(c)
			counts[a]++
		}

		moved := 0.0
		for ki := range centers {
			if counts[ki] == 0 {
				continue
			}
			newCenter := sums[ki].Scale(1.0 / float64(counts[ki]))
			moved += newCenter.Dist(centers[ki])
			centers[ki] = newCenter
		}
		if moved < kmeansConvergenceTol {
			break
		}
	}

	groups := make([][]int, k)
	for i, a := range assignments {
		groups[a] = append(groups[a], i)
	}

	out := make([][]int, 0, k)
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// seedK3 returns the heuristic k=3 seed centers for a force-split of a
// single giant cluster: top-left, bottom-left, bottom-right of the
// bounding box, each offset 25% of width/height inward.
func seedK3(box core.BBox2) []core.Vec2 {
	w, h := box.Width(), box.Height()
	return []core.Vec2{
		{X: box.Min.X + w*0.25, Y: box.Max.Y - h*0.25}, // top
		{X: box.Min.X + w*0.25, Y: box.Min.Y + h*0.25},  // bottom-left (front)
		{X: box.Max.X - w*0.25, Y: box.Min.Y + h*0.25},  // bottom-right (side)
	}
}

// seedK2 returns heuristic k=2 seed centers along the box's major axis,
// used to split a too-large cluster in two.
func seedK2(box core.BBox2) []core.Vec2 {
	w, h := box.Width(), box.Height()
	if w > h {
		return []core.Vec2{
			{X: box.Min.X + w*0.25, Y: box.Min.Y + h*0.5},
			{X: box.Max.X - w*0.25, Y: box.Min.Y + h*0.5},
		}
	}
	return []core.Vec2{
		{X: box.Min.X + w*0.5, Y: box.Max.Y - h*0.25},
		{X: box.Min.X + w*0.5, Y: box.Min.Y + h*0.25},
	}
}
