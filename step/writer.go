package step

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cadrecon/core"
)

// firstEntityID is where monotonic STEP entity numbering starts.
const firstEntityID = 10

// degenerateChordEpsilon below this chord length, an edge's direction
// defaults to (1,0,0) rather than dividing by a near-zero magnitude.
const degenerateChordEpsilon = 1e-9

// direction is a cache key for DIRECTION entities: identical unit
// vectors (to 6 decimal digits, the format's own precision) are written
// once and referenced by every edge that shares them.
type direction struct{ x, y, z float64 }

// Writer assembles a STEP AP214 wireframe document from Λ/Θ. It is not
// safe for concurrent use; callers writing more than one document use a
// fresh Writer each time.
type Writer struct {
	b        strings.Builder
	id       int
	dirCache map[direction]int
}

// NewWriter returns a Writer ready to emit a single document.
func NewWriter() *Writer {
	return &Writer{id: firstEntityID, dirCache: make(map[direction]int)}
}

// Write renders the full STEP document for the given Λ rows and Θ edge
// set and returns it as a string.
func Write(lambda []core.LambdaRow, theta *core.ThetaSet) string {
	w := NewWriter()
	w.writeHeader()

	idAppCtx := w.next()
	w.linef(idAppCtx, "APPLICATION_CONTEXT('automotive design')")

	idApd := w.next()
	w.linef(idApd, "APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2000,#%d)", idAppCtx)

	idProdDefCtx := w.next()
	w.linef(idProdDefCtx, "PRODUCT_DEFINITION_CONTEXT('part definition',#%d,'design')", idAppCtx)

	idProd := w.next()
	w.linef(idProd, "PRODUCT('Product1','Part1','',(#%d))", idProdDefCtx)

	idPdf := w.next()
	w.linef(idPdf, "PRODUCT_DEFINITION_FORMATION('1','First Version',#%d)", idProd)

	idPd := w.next()
	w.linef(idPd, "PRODUCT_DEFINITION('design','',#%d,#%d)", idPdf, idProdDefCtx)

	idPds := w.next()
	w.linef(idPds, "PRODUCT_DEFINITION_SHAPE('Shape1','Shape',#%d)", idPd)

	idSdr := w.next()
	idShapeRep := w.next()
	w.linef(idSdr, "SHAPE_DEFINITION_REPRESENTATION(#%d,#%d)", idPds, idShapeRep)

	idGeomCtx := w.next()
	w.linef(idGeomCtx, "GEOMETRIC_REPRESENTATION_CONTEXT('3D Context','World',3)")

	idGuac := w.next()
	idLenUnit := w.next()
	idAngleUnit := w.next()
	idSolidUnit := w.next()
	w.linef(idGuac, "GLOBAL_UNIT_ASSIGNED_CONTEXT((#%d,#%d,#%d),#%d)", idLenUnit, idAngleUnit, idSolidUnit, idGeomCtx)
	w.linef(idLenUnit, "(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	w.linef(idAngleUnit, "(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	w.linef(idSolidUnit, "(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.))")

	pointIDs := make([]int, len(lambda))
	for i, row := range lambda {
		pid := w.next()
		w.linef(pid, "CARTESIAN_POINT('',(%s,%s,%s))", fmtReal(row.Point.X), fmtReal(row.Point.Y), fmtReal(row.Point.Z))
		vid := w.next()
		w.linef(vid, "VERTEX_POINT('',#%d)", pid)
		pointIDs[i] = pid
	}

	var edgeIDs []int
	for _, e := range theta.Sorted() {
		p1, p2 := lambda[e.A].Point, lambda[e.B].Point
		v1ID, v2ID := pointIDs[e.A]+1, pointIDs[e.B]+1

		dx, dy, dz, mag := chordDirection(p1, p2)
		dirID := w.directionID(dx, dy, dz)

		vectorID := w.next()
		w.linef(vectorID, "VECTOR('',#%d,%s)", dirID, fmtReal(mag))

		lineID := w.next()
		w.linef(lineID, "LINE('',#%d,#%d)", pointIDs[e.A], vectorID)

		edgeID := w.next()
		w.linef(edgeID, "EDGE_CURVE('',#%d,#%d,#%d,.T.)", v1ID, v2ID, lineID)
		edgeIDs = append(edgeIDs, edgeID)
	}

	setID := w.next()
	w.linef(setID, "GEOMETRIC_CURVE_SET('Wireframe',(%s))", refList(edgeIDs))

	w.linef(idShapeRep, "SHAPE_REPRESENTATION('Simple Shape',(#%d),#%d)", setID, idGuac)

	w.b.WriteString("ENDSEC;\n")
	w.b.WriteString("END-ISO-10303-21;\n")
	return w.b.String()
}

func (w *Writer) writeHeader() {
	w.b.WriteString("ISO-10303-21;\n")
	w.b.WriteString("HEADER;\n")
	w.b.WriteString("FILE_DESCRIPTION(('Reconstructed 3D Wireframe'),'2;1');\n")
	w.b.WriteString("FILE_NAME('reconstruction.stp','',(''),(''),'cadrecon','cadrecon','');\n")
	w.b.WriteString("FILE_SCHEMA(('AUTOMOTIVE_DESIGN {1 0 10303 214 1 1 1 1}'));\n")
	w.b.WriteString("ENDSEC;\n")
	w.b.WriteString("DATA;\n")
}

func (w *Writer) next() int {
	id := w.id
	w.id++
	return id
}

func (w *Writer) linef(id int, format string, args ...interface{}) {
	fmt.Fprintf(&w.b, "#%d="+format+";\n", append([]interface{}{id}, args...)...)
}

// directionID returns the entity id of the DIRECTION(dx,dy,dz), writing
// a new entity only the first time this exact (6-decimal-rounded) unit
// vector is requested.
func (w *Writer) directionID(dx, dy, dz float64) int {
	key := direction{round6(dx), round6(dy), round6(dz)}
	if id, ok := w.dirCache[key]; ok {
		return id
	}
	id := w.next()
	w.linef(id, "DIRECTION('',(%s,%s,%s))", fmtReal(dx), fmtReal(dy), fmtReal(dz))
	w.dirCache[key] = id
	return id
}

// chordDirection returns the unit vector and magnitude of the chord
// from p1 to p2, defaulting to (1,0,0) when the chord is shorter than
// degenerateChordEpsilon.
func chordDirection(p1, p2 core.Vec3) (dx, dy, dz, mag float64) {
	d := p2.Sub(p1)
	mag = d.Length()
	if mag <= degenerateChordEpsilon {
		return 1, 0, 0, mag
	}
	return d.X / mag, d.Y / mag, d.Z / mag, mag
}

func refList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "#" + strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func fmtReal(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
