package reconstruct

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/cadrecon/align"
	"github.com/katalvlaran/cadrecon/core"
	"github.com/katalvlaran/cadrecon/lift"
	"github.com/katalvlaran/cadrecon/partition"
	"github.com/katalvlaran/cadrecon/select3d"
	"github.com/katalvlaran/cadrecon/step"
	"github.com/katalvlaran/cadrecon/topology"
)

// Reconstruct runs the full S1-S6 pipeline against a normalized 2D
// drawing and returns the STEP AP214 wireframe document it produces,
// along with the diagnostic report accumulated along the way.
//
// log may be nil; a nop logger is substituted so callers that don't
// care about progress logging don't have to construct one.
func Reconstruct(d core.Drawing, log *zap.Logger) (string, core.AnalysisReport, error) {
	if log == nil {
		log = zap.NewNop()
	}

	drawable := 0
	for _, e := range d.Entities {
		if e.Kind != core.KindDimension && e.Kind != core.KindText {
			drawable++
		}
	}
	if drawable == 0 {
		return "", core.AnalysisReport{}, ErrEmptyDrawing
	}

	vXY, vXZ, vYZ, report, err := partition.Partition(d)
	if err != nil {
		return "", report, fmt.Errorf("reconstruct: view separation: %w", err)
	}
	log.Info("partitioned drawing into views",
		zap.Int("entities", report.EntitiesTotal),
		zap.Bool("used_fallback", report.UsedFallback))

	vXY = topology.Build(vXY)
	vXZ = topology.Build(vXZ)
	vYZ = topology.Build(vYZ)
	for _, v := range []core.View{vXY, vXZ, vYZ} {
		if len(v.Vertices) == 0 {
			w := core.Warning{Code: "DegenerateView", Message: v.Plane.String() + " view has no vertices after topology construction"}
			report.Warnings = append(report.Warnings, w)
			log.Warn("degenerate view", zap.String("plane", v.Plane.String()))
		}
	}

	shift := align.Compute(vXY, vXZ, vYZ)
	log.Info("computed view alignment", zap.Float64("shift_xy_x", shift.XY.X), zap.Float64("shift_yz_y", shift.YZ.X), zap.Float64("shift_yz_z", shift.YZ.Y))

	lambda := lift.Build(vXY, vXZ, vYZ, shift)
	log.Info("built candidate 3d vertices", zap.Int("lambda", len(lambda)))

	theta := select3d.Build(lambda, vXY, vXZ, vYZ)
	log.Info("selected 3d edges", zap.Int("theta", theta.Len()))

	doc := step.Write(lambda, theta)
	return doc, report, nil
}
