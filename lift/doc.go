// Package lift implements stage S4 of the reconstruction pipeline:
// building the set of 3D candidate vertices (Λ, "lambda rows") by
// matching vertices across the three aligned views.
//
// A candidate exists where a Top-view vertex's global (x, y), a
// Front-view vertex's global (x, z), and a Right-view vertex's global
// (y, z) all agree within MATCH_TOLERANCE. The search pre-sorts the
// Front and Right vertex arrays by their shared axis and walks a
// binary-search window instead of scanning every vertex pair.
package lift
