// Package normalize is an optional pre-pass over a Drawing: inferring
// an entity's Kind from its layer/linetype name when the importer left
// it Unknown, and dropping degenerate entities below a configurable
// size threshold.
//
// It is not part of the reconstruction pipeline itself — Reconstruct
// takes a Drawing as-is — but callers (the CLI, an importer) run it
// first to clean up data before handing it to the core.
package normalize
