// Package drawingio provides a JSON wire codec for core.Drawing, the
// format the command-line driver reads from disk and the format an
// external importer would produce after parsing a DXF or SVG file.
//
// Encoding uses github.com/json-iterator/go in its standard-library
// compatible configuration; Drawing's tagged-union Primitive2D is
// represented as a kind-tagged object rather than Go's zero-value
// struct layout, so the wire format stays stable even as unused variant
// fields are added or reordered.
package drawingio
