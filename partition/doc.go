// Package partition implements the view partitioner: splitting a
// drawing's entities into the three orthographic view-role groups
// (XY/top, XZ/front, YZ/right) that the rest of the reconstruction
// pipeline assumes.
//
// The primary path tags entities by layer-name substring match. When
// that path finds nothing, a spatial fallback groups entities by
// bounding-box proximity (disjoint-set fixed-point merge, accelerated
// by an R-tree spatial index) and corrects the group count with
// k-means when it isn't exactly three, then assigns Top/Front/Right by
// centroid position under a third-angle layout assumption.
package partition
