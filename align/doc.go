// Package align implements stage S3 of the reconstruction pipeline:
// computing the per-axis shift that brings the three independently
// drawn views (top/XY, front/XZ, right/YZ) into a common global frame,
// using a centroid heuristic.
//
// Each view's local coordinate system has no guaranteed relationship to
// the others beyond the orthographic convention itself, so alignment
// compares vertex centroids pairwise and derives the translation that
// makes the shared axis between each pair of views agree.
package align
