package normalize

import (
	"strings"

	"github.com/katalvlaran/cadrecon/core"
)

// Config controls what the pre-pass does. The zero value is not usable
// directly; use DefaultConfig.
type Config struct {
	MinEntityLength        float64
	InferKindsFromStyle    bool
	DropDegenerateEntities bool
}

// DefaultConfig mirrors the importer's historical defaults: infer kinds,
// drop anything shorter than a micron-scale threshold.
func DefaultConfig() Config {
	return Config{
		MinEntityLength:        1e-6,
		InferKindsFromStyle:    true,
		DropDegenerateEntities: true,
	}
}

// Stats reports what InPlace changed.
type Stats struct {
	RemovedDegenerateEntities int
	InferredKinds             int
}

// InPlace runs the pre-pass over d, mutating d.Entities and returning
// what changed.
func InPlace(d *core.Drawing, cfg Config) Stats {
	var stats Stats

	if cfg.InferKindsFromStyle {
		for i := range d.Entities {
			if d.Entities[i].Kind != core.KindUnknown {
				continue
			}
			kind := inferKind(d.Entities[i].Style)
			if kind != core.KindUnknown {
				d.Entities[i].Kind = kind
				stats.InferredKinds++
			}
		}
	}

	if cfg.DropDegenerateEntities {
		minLen2 := cfg.MinEntityLength * cfg.MinEntityLength
		before := len(d.Entities)
		kept := d.Entities[:0]
		for _, e := range d.Entities {
			if !isDegenerate(e.Primitive, minLen2) {
				kept = append(kept, e)
			}
		}
		d.Entities = kept
		stats.RemovedDegenerateEntities = before - len(d.Entities)
	}

	return stats
}

func inferKind(style core.Style) core.EntityKind {
	s := strings.ToLower(style.Layer + " " + style.Linetype)
	switch {
	case strings.Contains(s, "center") || strings.Contains(s, "centre"):
		return core.KindCenter
	case strings.Contains(s, "hidden") || strings.Contains(s, "hid"):
		return core.KindHidden
	case strings.Contains(s, "object") || strings.Contains(s, "cont"):
		return core.KindObject
	default:
		return core.KindUnknown
	}
}

func isDegenerate(p core.Primitive2D, minLen2 float64) bool {
	switch p.Kind {
	case core.PrimitiveLine:
		dx, dy := p.Line.A.X-p.Line.B.X, p.Line.A.Y-p.Line.B.Y
		return dx*dx+dy*dy <= minLen2
	case core.PrimitiveCircle:
		return p.Circle.Radius*p.Circle.Radius <= minLen2
	case core.PrimitiveArc:
		return p.Arc.Radius*p.Arc.Radius <= minLen2
	case core.PrimitivePolyline:
		return len(p.Polyline.Vertices) < 2
	case core.PrimitiveBezier:
		b := p.Bezier
		pairs := [][2]core.Vec2{
			{b.P0, b.P1}, {b.P0, b.P2}, {b.P0, b.P3},
			{b.P1, b.P2}, {b.P1, b.P3}, {b.P2, b.P3},
		}
		maxD2 := 0.0
		for _, pr := range pairs {
			dx, dy := pr[0].X-pr[1].X, pr[0].Y-pr[1].Y
			if d2 := dx*dx + dy*dy; d2 > maxD2 {
				maxD2 = d2
			}
		}
		return maxD2 <= minLen2
	default:
		return false
	}
}
