package drawingio

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/cadrecon/core"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode reads a Drawing from its JSON wire representation.
func Decode(r io.Reader) (core.Drawing, error) {
	var w wireDrawing
	if err := jsonAPI.NewDecoder(r).Decode(&w); err != nil {
		return core.Drawing{}, fmt.Errorf("drawingio: decode: %w", err)
	}
	return w.toCore()
}

// Encode writes d to w in its JSON wire representation.
func Encode(w io.Writer, d core.Drawing) error {
	enc := jsonAPI.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromCore(d)); err != nil {
		return fmt.Errorf("drawingio: encode: %w", err)
	}
	return nil
}

type wireDrawing struct {
	Units    string       `json:"units"`
	Entities []wireEntity `json:"entities"`
}

type wireEntity struct {
	ID        uint64        `json:"id"`
	Kind      string        `json:"kind"`
	Style     wireStyle     `json:"style"`
	Primitive wirePrimitive `json:"primitive"`
}

type wireStyle struct {
	Layer      string `json:"layer,omitempty"`
	Linetype   string `json:"linetype,omitempty"`
	ColorIndex int    `json:"color_index,omitempty"`
	HasColor   bool   `json:"has_color,omitempty"`
}

type wireVec2 struct {
	X, Y float64
}

type wirePrimitive struct {
	Kind     string        `json:"kind"`
	Line     *wireLine     `json:"line,omitempty"`
	Circle   *wireCircle   `json:"circle,omitempty"`
	Arc      *wireArc      `json:"arc,omitempty"`
	Polyline *wirePolyline `json:"polyline,omitempty"`
	Bezier   *wireBezier   `json:"bezier,omitempty"`
}

type wireLine struct{ A, B wireVec2 }
type wireCircle struct {
	Center wireVec2
	Radius float64
}
type wireArc struct {
	Center               wireVec2
	Radius               float64
	StartAngle, EndAngle float64
}
type wirePolylineVertex struct {
	Pos   wireVec2
	Bulge float64
}
type wirePolyline struct {
	Vertices []wirePolylineVertex
	Closed   bool
}
type wireBezier struct{ P0, P1, P2, P3 wireVec2 }

var unitsToWire = map[core.Units]string{
	core.UnitsUnknown:     "unknown",
	core.UnitsInches:      "inches",
	core.UnitsMillimeters: "millimeters",
	core.UnitsCentimeters: "centimeters",
	core.UnitsMeters:      "meters",
}

var wireToUnits = invertStringMap(unitsToWire)

var kindToWire = map[core.EntityKind]string{
	core.KindUnknown:   "unknown",
	core.KindObject:    "object",
	core.KindHidden:    "hidden",
	core.KindCenter:    "center",
	core.KindDimension: "dimension",
	core.KindText:      "text",
	core.KindHatch:     "hatch",
}

var wireToKind = invertStringMapKind(kindToWire)

var primKindToWire = map[core.PrimitiveKind]string{
	core.PrimitiveLine:     "line",
	core.PrimitiveCircle:   "circle",
	core.PrimitiveArc:      "arc",
	core.PrimitivePolyline: "polyline",
	core.PrimitiveBezier:   "bezier",
}

func fromCore(d core.Drawing) wireDrawing {
	w := wireDrawing{Units: unitsToWire[d.Units]}
	for _, e := range d.Entities {
		w.Entities = append(w.Entities, wireEntityFromCore(e))
	}
	return w
}

func (w wireDrawing) toCore() (core.Drawing, error) {
	d := core.Drawing{Units: wireToUnits[w.Units]}
	for _, we := range w.Entities {
		e, err := we.toCore()
		if err != nil {
			return core.Drawing{}, err
		}
		d.Entities = append(d.Entities, e)
	}
	return d, nil
}

func wireEntityFromCore(e core.Entity2D) wireEntity {
	return wireEntity{
		ID:   e.ID,
		Kind: kindToWire[e.Kind],
		Style: wireStyle{
			Layer:      e.Style.Layer,
			Linetype:   e.Style.Linetype,
			ColorIndex: e.Style.ColorIndex,
			HasColor:   e.Style.HasColor,
		},
		Primitive: wirePrimitiveFromCore(e.Primitive),
	}
}

func (we wireEntity) toCore() (core.Entity2D, error) {
	kind, ok := wireToKind[we.Kind]
	if !ok {
		return core.Entity2D{}, fmt.Errorf("drawingio: entity %d: unknown kind %q", we.ID, we.Kind)
	}
	prim, err := we.Primitive.toCore()
	if err != nil {
		return core.Entity2D{}, fmt.Errorf("drawingio: entity %d: %w", we.ID, err)
	}
	return core.Entity2D{
		ID:   we.ID,
		Kind: kind,
		Style: core.Style{
			Layer:      we.Style.Layer,
			Linetype:   we.Style.Linetype,
			ColorIndex: we.Style.ColorIndex,
			HasColor:   we.Style.HasColor,
		},
		Primitive: prim,
	}, nil
}

func wirePrimitiveFromCore(p core.Primitive2D) wirePrimitive {
	wp := wirePrimitive{Kind: primKindToWire[p.Kind]}
	switch p.Kind {
	case core.PrimitiveLine:
		wp.Line = &wireLine{A: fromVec2(p.Line.A), B: fromVec2(p.Line.B)}
	case core.PrimitiveCircle:
		wp.Circle = &wireCircle{Center: fromVec2(p.Circle.Center), Radius: p.Circle.Radius}
	case core.PrimitiveArc:
		wp.Arc = &wireArc{Center: fromVec2(p.Arc.Center), Radius: p.Arc.Radius, StartAngle: p.Arc.StartAngle, EndAngle: p.Arc.EndAngle}
	case core.PrimitivePolyline:
		wpoly := wirePolyline{Closed: p.Polyline.Closed}
		for _, v := range p.Polyline.Vertices {
			wpoly.Vertices = append(wpoly.Vertices, wirePolylineVertex{Pos: fromVec2(v.Pos), Bulge: v.Bulge})
		}
		wp.Polyline = &wpoly
	case core.PrimitiveBezier:
		wp.Bezier = &wireBezier{P0: fromVec2(p.Bezier.P0), P1: fromVec2(p.Bezier.P1), P2: fromVec2(p.Bezier.P2), P3: fromVec2(p.Bezier.P3)}
	}
	return wp
}

func (wp wirePrimitive) toCore() (core.Primitive2D, error) {
	switch wp.Kind {
	case "line":
		if wp.Line == nil {
			return core.Primitive2D{}, fmt.Errorf("drawingio: primitive kind line missing body")
		}
		return core.Primitive2D{Kind: core.PrimitiveLine, Line: core.LineSeg{A: wp.Line.A.toCore(), B: wp.Line.B.toCore()}}, nil
	case "circle":
		if wp.Circle == nil {
			return core.Primitive2D{}, fmt.Errorf("drawingio: primitive kind circle missing body")
		}
		return core.Primitive2D{Kind: core.PrimitiveCircle, Circle: core.Circle{Center: wp.Circle.Center.toCore(), Radius: wp.Circle.Radius}}, nil
	case "arc":
		if wp.Arc == nil {
			return core.Primitive2D{}, fmt.Errorf("drawingio: primitive kind arc missing body")
		}
		return core.Primitive2D{Kind: core.PrimitiveArc, Arc: core.Arc{Center: wp.Arc.Center.toCore(), Radius: wp.Arc.Radius, StartAngle: wp.Arc.StartAngle, EndAngle: wp.Arc.EndAngle}}, nil
	case "polyline":
		if wp.Polyline == nil {
			return core.Primitive2D{}, fmt.Errorf("drawingio: primitive kind polyline missing body")
		}
		poly := core.Polyline{Closed: wp.Polyline.Closed}
		for _, v := range wp.Polyline.Vertices {
			poly.Vertices = append(poly.Vertices, core.PolylineVertex{Pos: v.Pos.toCore(), Bulge: v.Bulge})
		}
		return core.Primitive2D{Kind: core.PrimitivePolyline, Polyline: poly}, nil
	case "bezier":
		if wp.Bezier == nil {
			return core.Primitive2D{}, fmt.Errorf("drawingio: primitive kind bezier missing body")
		}
		return core.Primitive2D{Kind: core.PrimitiveBezier, Bezier: core.Bezier{P0: wp.Bezier.P0.toCore(), P1: wp.Bezier.P1.toCore(), P2: wp.Bezier.P2.toCore(), P3: wp.Bezier.P3.toCore()}}, nil
	default:
		return core.Primitive2D{}, fmt.Errorf("drawingio: unknown primitive kind %q", wp.Kind)
	}
}

func fromVec2(v core.Vec2) wireVec2  { return wireVec2{X: v.X, Y: v.Y} }
func (v wireVec2) toCore() core.Vec2 { return core.Vec2{X: v.X, Y: v.Y} }

func invertStringMap(m map[core.Units]string) map[string]core.Units {
	out := make(map[string]core.Units, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func invertStringMapKind(m map[core.EntityKind]string) map[string]core.EntityKind {
	out := make(map[string]core.EntityKind, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
