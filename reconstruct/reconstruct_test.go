package reconstruct

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cadrecon/core"
	"github.com/katalvlaran/cadrecon/partition"
)

// square10 returns the four segments of a 10x10 axis-aligned square
// centered at (cx, cy), tagged with the given layer.
func square10(startID uint64, layer string, cx, cy float64) []core.Entity2D {
	h := 5.0
	corners := []core.Vec2{
		{X: cx - h, Y: cy - h},
		{X: cx + h, Y: cy - h},
		{X: cx + h, Y: cy + h},
		{X: cx - h, Y: cy + h},
	}
	var ents []core.Entity2D
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		ents = append(ents, core.Entity2D{
			ID:        startID + uint64(i),
			Kind:      core.KindObject,
			Primitive: core.Primitive2D{Kind: core.PrimitiveLine, Line: core.LineSeg{A: a, B: b}},
			Style:     core.Style{Layer: layer},
		})
	}
	return ents
}

func TestReconstructCubeLayerTagged(t *testing.T) {
	var entities []core.Entity2D
	entities = append(entities, square10(1, "TOP", 0, 0)...)
	entities = append(entities, square10(10, "FRONT", 0, 0)...)
	entities = append(entities, square10(20, "RIGHT", 0, 0)...)

	doc, report, err := Reconstruct(core.Drawing{Entities: entities}, nil)
	require.NoError(t, err)
	assert.False(t, report.UsedFallback)
	assert.Equal(t, 8, strings.Count(doc, "VERTEX_POINT("))
	assert.Equal(t, 12, strings.Count(doc, "EDGE_CURVE("))
}

func TestReconstructCubeSpatialFallback(t *testing.T) {
	var entities []core.Entity2D
	entities = append(entities, square10(1, "", 0, 100)...)  // top
	entities = append(entities, square10(10, "", 0, 0)...)   // front
	entities = append(entities, square10(20, "", 100, 0)...) // side

	doc, report, err := Reconstruct(core.Drawing{Entities: entities}, nil)
	require.NoError(t, err)
	assert.True(t, report.UsedFallback)
	assert.Equal(t, 8, strings.Count(doc, "VERTEX_POINT("))
	assert.Equal(t, 12, strings.Count(doc, "EDGE_CURVE("))
}

func TestReconstructEmptyDrawingFails(t *testing.T) {
	_, _, err := Reconstruct(core.Drawing{}, nil)
	assert.ErrorIs(t, err, ErrEmptyDrawing)
}

func TestReconstructViewSeparationFailureIsWrapped(t *testing.T) {
	d := core.Drawing{Entities: []core.Entity2D{
		{
			ID:        1,
			Kind:      core.KindObject,
			Primitive: core.Primitive2D{Kind: core.PrimitiveLine, Line: core.LineSeg{A: core.Vec2{}, B: core.Vec2{X: 1}}},
		},
	}}
	_, _, err := Reconstruct(d, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, partition.ErrViewSeparationFailed)
}
