// Package reconstruct wires the six-stage pipeline (partition, topology,
// align, lift, select3d, step) into a single entry point: given a
// normalized 2D drawing, it returns a STEP AP214 wireframe document.
//
// Reconstruct never panics on malformed geometric input; numeric edge
// cases (parallel segments, zero-length chords, non-finite coordinates)
// are handled locally by the stage that encounters them. Only the
// conditions listed in this package's error sentinels and a failed view
// separation (partition.ErrViewSeparationFailed, returned wrapped) stop
// the pipeline outright.
package reconstruct
