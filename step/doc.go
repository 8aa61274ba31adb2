// Package step implements stage S6 of the reconstruction pipeline: a
// textual STEP AP214 wireframe writer.
//
// Given a set of 3D candidate vertices (Λ) and the edges selected
// between them (Θ), it emits the standard AP214 boilerplate (header,
// application/product/shape-definition context, unit assignment) plus
// one CARTESIAN_POINT/VERTEX_POINT pair per vertex and one
// DIRECTION/VECTOR/LINE/EDGE_CURVE group per edge, collected into a
// single GEOMETRIC_CURVE_SET.
package step
