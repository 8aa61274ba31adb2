package reconstruct

import "errors"

// ErrEmptyDrawing is returned when no geometric entity survives
// filtering.
var ErrEmptyDrawing = errors.New("reconstruct: drawing has no usable geometric entities")

// ErrFormat is returned when the wireframe emitter cannot produce
// output. The core never generates this in practice (string building
// doesn't fail); it exists for completeness of the tagged-failure
// design.
var ErrFormat = errors.New("reconstruct: failed to format wireframe output")
