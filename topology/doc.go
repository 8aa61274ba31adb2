// Package topology implements stage S2 of the three-view reconstruction
// pipeline: turning a view's raw 2D entities into a simple, undirected
// planar graph of vertices and edges.
//
// The process is segment explosion (lines and polylines only; circles,
// arcs, and beziers are ignored), all-pairs segment intersection,
// splitting at the accumulated intersection points, and vertex snapping
// within a fixed tolerance. The result is the View's Vertices/Edges
// arrays, ready for cross-view alignment (package align) and 3D lifting
// (package lift).
package topology
