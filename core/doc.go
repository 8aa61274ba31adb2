// Package core defines the shared data model for the three-view
// reconstruction pipeline: 2D geometric primitives, the normalized
// drawing format, per-plane views with their planar topology, and the
// candidate 3D vertices (Λ) and edges (Θ) that later stages produce.
//
// Every type here is a plain value or a thin read-mostly struct; the
// pipeline is single-threaded and synchronous end to end (no stage
// observes a concurrent reader, no type in this package needs its own
// locking). Vertex and edge identity is a dense array index, never a
// pointer, so every structure below is trivially copyable and
// serializable.
package core
