// Package select3d implements stage S5 of the reconstruction pipeline:
// deciding which pairs of Λ candidate vertices form a real 3D edge (Θ).
//
// A pair (L1, L2) is accepted only if its projection onto all three
// views is itself a supported edge (or the same vertex, the degenerate
// point case) — first tested against the Top view, then Front, then
// Right, failing fast at the first unsupported projection.
package select3d
