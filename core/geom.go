package core

import "math"

// Vec2 is a point or free vector in a single 2D view's local coordinate
// frame.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a point in the global 3D reconstruction frame.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Dist returns the Euclidean distance between v and w.
func (v Vec2) Dist(w Vec2) float64 {
	dx, dy := v.X-w.X, v.Y-w.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Finite reports whether both components are finite (not NaN/Inf).
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// perpDot is the 2D cross-product (a.k.a. perp-dot) product used by the
// segment-segment intersection predicate: perp(a, b) = a.X*b.Y - a.Y*b.X.
func perpDot(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// PerpDot exposes perpDot for callers outside this package (topology's
// intersection routine and any future geometric predicate that needs
// the same 2D cross product).
func PerpDot(a, b Vec2) float64 { return perpDot(a, b) }

// BBox2 is an axis-aligned bounding box in a view's local frame.
// An empty box has Min components greater than Max components;
// use NewEmptyBBox2 to construct one and Include/Union to grow it.
type BBox2 struct {
	Min, Max Vec2
}

// NewEmptyBBox2 returns a BBox2 that contains no points.
func NewEmptyBBox2() BBox2 {
	return BBox2{
		Min: Vec2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vec2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether the box contains no points.
func (b BBox2) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Include grows b, in place semantics via return value, to cover p.
func (b BBox2) Include(p Vec2) BBox2 {
	return BBox2{
		Min: Vec2{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Vec2{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both b and o.
func (b BBox2) Union(o BBox2) BBox2 {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return BBox2{
		Min: Vec2{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Vec2{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Center returns the midpoint of the box.
func (b BBox2) Center() Vec2 {
	return Vec2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Width returns the box's extent along X, never negative.
func (b BBox2) Width() float64 { return math.Max(0, b.Max.X-b.Min.X) }

// Height returns the box's extent along Y, never negative.
func (b BBox2) Height() float64 { return math.Max(0, b.Max.Y-b.Min.Y) }

// Diag returns the length of the box's diagonal.
func (b BBox2) Diag() float64 {
	w, h := b.Width(), b.Height()
	return math.Sqrt(w*w + h*h)
}

// Expand grows the box by delta on every side. Used by the spatial
// clustering fallback to turn entity boxes into proximity regions
// before the fixed-point merge.
func (b BBox2) Expand(delta float64) BBox2 {
	return BBox2{
		Min: Vec2{X: b.Min.X - delta, Y: b.Min.Y - delta},
		Max: Vec2{X: b.Max.X + delta, Y: b.Max.Y + delta},
	}
}

// DistanceTo returns the gap between b and o: the Euclidean distance
// between their nearest edges, where an axis on which the boxes overlap
// or touch contributes no gap. It is zero only when they overlap or
// touch on both axes.
func (b BBox2) DistanceTo(o BBox2) float64 {
	dx := 0.0
	switch {
	case b.Max.X < o.Min.X:
		dx = o.Min.X - b.Max.X
	case o.Max.X < b.Min.X:
		dx = b.Min.X - o.Max.X
	}
	dy := 0.0
	switch {
	case b.Max.Y < o.Min.Y:
		dy = o.Min.Y - b.Max.Y
	case o.Max.Y < b.Min.Y:
		dy = b.Min.Y - o.Max.Y
	}
	return math.Sqrt(dx*dx + dy*dy)
}
