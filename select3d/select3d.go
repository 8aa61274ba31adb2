package select3d

import "github.com/katalvlaran/cadrecon/core"

// Build enumerates all pairs of lambda rows and keeps the ones whose
// projection is supported by an edge (or a degenerate same-vertex
// point) in every one of the three views, testing XY, then XZ, then YZ
// and failing fast on the first unsupported view.
func Build(lambda []core.LambdaRow, vXY, vXZ, vYZ core.View) *core.ThetaSet {
	theta := core.NewThetaSet()

	xySet := vXY.EdgeSet()
	xzSet := vXZ.EdgeSet()
	yzSet := vYZ.EdgeSet()

	for i := 0; i < len(lambda); i++ {
		for j := i + 1; j < len(lambda); j++ {
			l1, l2 := lambda[i], lambda[j]

			if !core.HasEdgeIn(xySet, l1.VXY, l2.VXY) {
				continue
			}
			if !core.HasEdgeIn(xzSet, l1.VXZ, l2.VXZ) {
				continue
			}
			if !core.HasEdgeIn(yzSet, l1.VYZ, l2.VYZ) {
				continue
			}

			theta.Add(i, j)
		}
	}
	return theta
}
