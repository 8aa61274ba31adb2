package core

// Units records the linear unit a Drawing's coordinates are expressed
// in. The reconstruction core never converts between units; it is the
// importer's job to normalize a drawing to a single unit before
// handing it to the pipeline.
type Units int

const (
	UnitsUnknown Units = iota
	UnitsInches
	UnitsMillimeters
	UnitsCentimeters
	UnitsMeters
)

// EntityKind classifies a drawing entity. The reconstruction core uses
// Kind only to skip dimension and text entities in the view
// partitioner; beyond that, Kind is carried through for callers
// (diagnostics, the optional normalize pre-pass) that care about line
// semantics.
type EntityKind int

const (
	KindUnknown EntityKind = iota
	KindObject
	KindHidden
	KindCenter
	KindDimension
	KindText
	KindHatch
)

// Style is the optional presentation metadata attached to an entity:
// layer name, linetype name, and a color index. All three fields are
// optional because not every importer populates them.
type Style struct {
	Layer      string // empty means "no layer / layer 0"
	Linetype   string
	ColorIndex int
	HasColor   bool
}

// LineSeg is a straight 2D segment primitive.
type LineSeg struct {
	A, B Vec2
}

// Circle is a full circle primitive. The reconstruction core ignores
// circles for topology purposes; only their bounding box is used, by
// the view partitioner's fallback clustering.
type Circle struct {
	Center Vec2
	Radius float64
}

// Arc is a circular arc primitive, likewise ignored for topology.
type Arc struct {
	Center               Vec2
	Radius               float64
	StartAngle, EndAngle float64 // degrees
}

// PolylineVertex is one vertex of a Polyline, with an optional bulge
// (arc sag fraction) carried through from the source format but unused
// by the straight-segment topologizer.
type PolylineVertex struct {
	Pos   Vec2
	Bulge float64
}

// Polyline is an ordered chain of vertices, optionally closed. Exploding
// a Polyline into segments is the topologizer's job.
type Polyline struct {
	Vertices []PolylineVertex
	Closed   bool
}

// Bezier is a cubic Bézier primitive. Like circles and arcs, the
// reconstruction core ignores it for topology; only its control-point
// bounding box participates in clustering.
type Bezier struct {
	P0, P1, P2, P3 Vec2
}

// PrimitiveKind tags which field of Primitive2D is populated.
type PrimitiveKind int

const (
	PrimitiveLine PrimitiveKind = iota
	PrimitiveCircle
	PrimitiveArc
	PrimitivePolyline
	PrimitiveBezier
)

// Primitive2D is a tagged union over the five 2D primitive kinds a
// drawing entity may carry. Exactly one of Line/Circle/Arc/Polyline/
// Bezier is meaningful, selected by Kind.
type Primitive2D struct {
	Kind     PrimitiveKind
	Line     LineSeg
	Circle   Circle
	Arc      Arc
	Polyline Polyline
	Bezier   Bezier
}

// BBox computes the primitive's axis-aligned bounding box: the AABB
// over endpoints for segments and polylines, center ± radius on both
// axes for circles and arcs.
func (p Primitive2D) BBox() BBox2 {
	box := NewEmptyBBox2()
	switch p.Kind {
	case PrimitiveLine:
		box = box.Include(p.Line.A).Include(p.Line.B)
	case PrimitiveCircle:
		c, r := p.Circle.Center, p.Circle.Radius
		box = box.Include(Vec2{X: c.X - r, Y: c.Y - r}).Include(Vec2{X: c.X + r, Y: c.Y + r})
	case PrimitiveArc:
		c, r := p.Arc.Center, p.Arc.Radius
		box = box.Include(Vec2{X: c.X - r, Y: c.Y - r}).Include(Vec2{X: c.X + r, Y: c.Y + r})
	case PrimitivePolyline:
		for _, v := range p.Polyline.Vertices {
			box = box.Include(v.Pos)
		}
	case PrimitiveBezier:
		box = box.Include(p.Bezier.P0).Include(p.Bezier.P1).Include(p.Bezier.P2).Include(p.Bezier.P3)
	}
	return box
}

// Entity2D is one geometric entity in a normalized drawing: a stable
// identifier, a kind tag, a style record, and a primitive.
type Entity2D struct {
	ID        uint64
	Kind      EntityKind
	Primitive Primitive2D
	Style     Style
}

// BBox delegates to the entity's primitive.
func (e Entity2D) BBox() BBox2 { return e.Primitive.BBox() }

// TextEntity and DimensionEntity are carried for completeness (the
// importer populates them) but are never consulted by the
// reconstruction core, which ignores dimensions and text.
type TextEntity struct {
	ID     uint64
	Text   string
	At     Vec2
	Height float64
	Style  Style
}

type DimensionEntity struct {
	ID          uint64
	RawType     int
	Text        string
	Measurement float64
	Style       Style
}

// Drawing is the normalized 2D drawing input handed to the
// reconstruction core.
type Drawing struct {
	Units    Units
	Entities []Entity2D
	Dims     []DimensionEntity
	Texts    []TextEntity
}

// Extents returns the union bounding box over all entities, or an
// empty box (as from NewEmptyBBox2) and false if the drawing has no
// entities.
func (d Drawing) Extents() (BBox2, bool) {
	box := NewEmptyBBox2()
	any := false
	for _, e := range d.Entities {
		box = box.Union(e.BBox())
		any = true
	}
	return box, any
}
