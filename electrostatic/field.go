package electrostatic

import (
	"github.com/notargets/gopic/utils"
)

// solveElectricField sets E = -grad(potential) with second order stencils:
// central differences on interior nodes, one sided three point differences on
// the first and last node along each axis.
func (es *Electrostatic) solveElectricField() {
	for _, axis := range []utils.Axis{utils.AxisX, utils.AxisY, utils.AxisZ} {
		negGradient(es.ElectricField.Component(axis), es.Potential, axis, es.Delta.Component(axis))
	}
}

func negGradient(dst, P *utils.ScalarGrid[float64], axis utils.Axis, delta float64) {
	var (
		cells = P.Cells
		s     = P.Stride(axis)
		last  = cells.Component(axis) - 1
		c     = -1. / (2. * delta)
		p, e  = P.Data, dst.Data
	)
	for k := 0; k < cells.Z; k++ {
		for j := 0; j < cells.Y; j++ {
			for i := 0; i < cells.X; i++ {
				ind := P.Index(i, j, k)
				switch utils.NewTriplet(i, j, k).Component(axis) {
				case 0:
					e[ind] = c * (-3.*p[ind] + 4.*p[ind+s] - p[ind+2*s])
				case last:
					e[ind] = c * (p[ind-2*s] - 4.*p[ind-s] + 3.*p[ind])
				default:
					e[ind] = c * (p[ind+s] - p[ind-s])
				}
			}
		}
	}
}
