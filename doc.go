// Package cadrecon reconstructs a 3D wireframe model from a 2D
// engineering drawing that contains three orthographic projections
// (top, front, right-side) of the same part.
//
// Given a normalized 2D drawing, the pipeline separates the three
// views, builds a planar topology per view, lifts matching vertex
// triples into 3D candidate points, and keeps the 3D edges whose
// projection is supported by all three views. The result is written as
// a STEP AP214 wireframe.
//
// The pipeline lives under six subpackages, one per stage:
//
//	partition/  — S1: split drawing entities into view-role groups
//	topology/   — S2: per-view planar graph construction
//	align/      — S3: translational offsets bringing views into one frame
//	lift/       — S4: cross-view vertex matching into 3D candidates
//	select3d/   — S5: cross-view edge support testing
//	step/       — S6: STEP AP214 textual wireframe emission
//
// reconstruct/ wires all six into a single entry point; core/ holds the
// shared data model all of them operate on. normalize/ and drawingio/
// are optional pre- and post-processing helpers used by cmd/cadrecon,
// the command-line driver.
package cadrecon
