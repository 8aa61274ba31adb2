package partition

import (
	"strings"

	"github.com/katalvlaran/cadrecon/core"
)

// byLayer implements the primary view-separation path: for each
// non-dimension, non-text entity, examine the case-insensitive
// layer name and assign by substring match, in order:
//
//	"XY" or "TOP"            -> XY view
//	"XZ" or "FRONT"          -> XZ view
//	"YZ", "RIGHT", or "SIDE" -> YZ view
//
// Entities whose layer matches none of the above are dropped. Returns
// the three views (possibly still empty) so the caller can decide
// whether to fall back to spatial clustering.
func byLayer(d core.Drawing) (xy, xz, yz core.View) {
	xy, xz, yz = core.NewView(core.PlaneXY), core.NewView(core.PlaneXZ), core.NewView(core.PlaneYZ)

	for _, e := range d.Entities {
		if e.Kind == core.KindDimension || e.Kind == core.KindText {
			continue
		}
		layer := strings.ToUpper(e.Style.Layer)

		switch {
		case strings.Contains(layer, "XY") || strings.Contains(layer, "TOP"):
			xy.RawEntities = append(xy.RawEntities, e)
		case strings.Contains(layer, "XZ") || strings.Contains(layer, "FRONT"):
			xz.RawEntities = append(xz.RawEntities, e)
		case strings.Contains(layer, "YZ") || strings.Contains(layer, "RIGHT") || strings.Contains(layer, "SIDE"):
			yz.RawEntities = append(yz.RawEntities, e)
		}
	}

	return xy, xz, yz
}
