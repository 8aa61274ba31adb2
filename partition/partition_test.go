package partition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cadrecon/core"
)

func lineEntity(id uint64, layer string, a, b core.Vec2) core.Entity2D {
	return core.Entity2D{
		ID:        id,
		Kind:      core.KindObject,
		Primitive: core.Primitive2D{Kind: core.PrimitiveLine, Line: core.LineSeg{A: a, B: b}},
		Style:     core.Style{Layer: layer},
	}
}

func TestPartitionByLayer(t *testing.T) {
	d := core.Drawing{Entities: []core.Entity2D{
		lineEntity(1, "TOP", core.Vec2{X: 0, Y: 0}, core.Vec2{X: 1, Y: 0}),
		lineEntity(2, "FRONT", core.Vec2{X: 0, Y: 0}, core.Vec2{X: 1, Y: 1}),
		lineEntity(3, "RIGHT", core.Vec2{X: 0, Y: 0}, core.Vec2{X: 0, Y: 1}),
	}}

	xy, xz, yz, report, err := Partition(d)
	require.NoError(t, err)
	assert.False(t, report.UsedFallback)
	assert.Len(t, xy.RawEntities, 1)
	assert.Len(t, xz.RawEntities, 1)
	assert.Len(t, yz.RawEntities, 1)
}

func TestPartitionFallbackThreeClusters(t *testing.T) {
	// Three spatially separated clusters, no usable layer names.
	d := core.Drawing{Entities: []core.Entity2D{
		lineEntity(1, "0", core.Vec2{X: 0, Y: 100}, core.Vec2{X: 5, Y: 104}),
		lineEntity(2, "0", core.Vec2{X: 2, Y: 101}, core.Vec2{X: 4, Y: 103}),

		lineEntity(3, "0", core.Vec2{X: 0, Y: 0}, core.Vec2{X: 5, Y: 4}),
		lineEntity(4, "0", core.Vec2{X: 2, Y: 1}, core.Vec2{X: 4, Y: 3}),

		lineEntity(5, "0", core.Vec2{X: 100, Y: 0}, core.Vec2{X: 105, Y: 4}),
		lineEntity(6, "0", core.Vec2{X: 102, Y: 1}, core.Vec2{X: 104, Y: 3}),
	}}

	xy, xz, yz, report, err := Partition(d)
	require.NoError(t, err)
	assert.True(t, report.UsedFallback)
	assert.Len(t, report.Clusters, 3)
	assert.NotEmpty(t, xy.RawEntities)
	assert.NotEmpty(t, xz.RawEntities)
	assert.NotEmpty(t, yz.RawEntities)

	// Top cluster is the one with greatest Y centroid, i.e. entities 1 and 2.
	var topIDs []uint64
	for _, e := range xy.RawEntities {
		topIDs = append(topIDs, e.ID)
	}
	assert.ElementsMatch(t, []uint64{1, 2}, topIDs)
}

func TestPartitionFailsWithFewerThanThreeGroups(t *testing.T) {
	d := core.Drawing{Entities: []core.Entity2D{
		lineEntity(1, "0", core.Vec2{X: 0, Y: 0}, core.Vec2{X: 1, Y: 1}),
	}}

	_, _, _, report, err := Partition(d)
	assert.ErrorIs(t, err, ErrViewSeparationFailed)
	assert.True(t, report.UsedFallback)
}

func TestDrawableIndicesSkipsDimensionsAndText(t *testing.T) {
	d := core.Drawing{Entities: []core.Entity2D{
		lineEntity(1, "0", core.Vec2{}, core.Vec2{X: 1}),
		{ID: 2, Kind: core.KindDimension},
		{ID: 3, Kind: core.KindText},
	}}

	idx := drawableIndices(d)
	assert.Equal(t, []int{0}, idx)
}

// tinyAt returns a near-point entity (a 0.1-unit line) at p, so its
// bounding box is effectively a point for clustering purposes.
func tinyAt(id uint64, p core.Vec2) core.Entity2D {
	return lineEntity(id, "0", p, core.Vec2{X: p.X + 0.1, Y: p.Y})
}

// blob returns three tightly-packed entities near c, consuming ids from
// *nextID.
func blob(nextID *uint64, c core.Vec2) []core.Entity2D {
	var out []core.Entity2D
	for _, o := range []core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}} {
		*nextID++
		out = append(out, tinyAt(*nextID, core.Vec2{X: c.X + o.X, Y: c.Y + o.Y}))
	}
	return out
}

// bridgeChain returns evenly-spaced entities (at most step apart) along
// the segment from..to, excluding the endpoints themselves, so that two
// otherwise-distant blobs transitively merge under mergeByProximity.
func bridgeChain(nextID *uint64, from, to core.Vec2, step float64) []core.Entity2D {
	var out []core.Entity2D
	dist := from.Dist(to)
	n := int(math.Ceil(dist / step))
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		p := core.Vec2{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t}
		*nextID++
		out = append(out, tinyAt(*nextID, p))
	}
	return out
}

func TestKmeansSeedK3SeparatesThreeCorners(t *testing.T) {
	var id uint64
	var entities []core.Entity2D
	corners := []core.Vec2{{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 30, Y: 60}}
	for _, c := range corners {
		entities = append(entities, blob(&id, c)...)
	}

	members := make([]int, len(entities))
	for i := range members {
		members[i] = i
	}
	box := groupBBox(entities, members)
	groups := kmeans(entities, seedK3(box))

	require.Len(t, groups, 3)
	total := 0
	for _, g := range groups {
		assert.Len(t, g, 3)
		total += len(g)
	}
	assert.Equal(t, len(entities), total)
}

func TestKmeansSeedK2SplitsAlongMajorAxis(t *testing.T) {
	var id uint64
	var entities []core.Entity2D
	for _, c := range []core.Vec2{{X: 0, Y: 0}, {X: 60, Y: 0}} {
		entities = append(entities, blob(&id, c)...)
	}

	members := make([]int, len(entities))
	for i := range members {
		members[i] = i
	}
	box := groupBBox(entities, members)
	groups := kmeans(entities, seedK2(box))

	require.Len(t, groups, 2)
	for _, g := range groups {
		assert.Len(t, g, 3)
	}
}

func TestSeparateSpatiallyCorrectsSingleBlobViaKMeans(t *testing.T) {
	a, b, c := core.Vec2{X: 0, Y: 0}, core.Vec2{X: 60, Y: 0}, core.Vec2{X: 30, Y: 60}

	var id uint64
	var entities []core.Entity2D
	entities = append(entities, blob(&id, a)...)
	entities = append(entities, blob(&id, b)...)
	entities = append(entities, blob(&id, c)...)
	entities = append(entities, bridgeChain(&id, a, b, 10)...)
	entities = append(entities, bridgeChain(&id, b, c, 10)...)
	entities = append(entities, bridgeChain(&id, c, a, 10)...)

	// Confirm the premise: the bridges tie the three corners into one
	// connected blob, so the proximity merge alone can't separate them.
	require.Len(t, mergeByProximity(entities), 1)

	d := core.Drawing{Entities: entities}
	_, _, _, report, err := separateSpatially(d, core.AnalysisReport{})
	require.NoError(t, err)
	assert.Len(t, report.Clusters, 3)
}

func TestSeparateSpatiallyCorrectsTwoBlobsViaKMeans(t *testing.T) {
	a, b := core.Vec2{X: 0, Y: 0}, core.Vec2{X: 60, Y: 0}
	farC := core.Vec2{X: 500, Y: 500}

	var id uint64
	var entities []core.Entity2D
	entities = append(entities, blob(&id, a)...)
	entities = append(entities, blob(&id, b)...)
	entities = append(entities, bridgeChain(&id, a, b, 10)...)
	entities = append(entities, blob(&id, farC)...)

	// Confirm the premise: a and b fuse into one blob via the bridge,
	// while farC stays a separate, unconnected blob.
	require.Len(t, mergeByProximity(entities), 2)

	d := core.Drawing{Entities: entities}
	_, _, _, report, err := separateSpatially(d, core.AnalysisReport{})
	require.NoError(t, err)
	assert.Len(t, report.Clusters, 3)
}

func TestAssignRolesThirdAngle(t *testing.T) {
	centers := []core.Vec2{
		{X: 10, Y: 10}, // top
		{X: 0, Y: 0},   // front (smaller X)
		{X: 20, Y: 0},  // side
	}
	top, front, side := assignRoles(centers)
	assert.Equal(t, 0, top)
	assert.Equal(t, 1, front)
	assert.Equal(t, 2, side)
}
