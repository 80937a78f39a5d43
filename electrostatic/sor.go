package electrostatic

import (
	"math"

	"github.com/notargets/gopic/constants"
)

// solvePotential relaxes the interior nodes of the potential in place with
// Gauss-Seidel SOR until the residual norm drops to the tolerance. The
// residual is evaluated after the first sweep and every CheckInterval sweeps
// after that.
func (es *Electrostatic) solvePotential() (err error) {
	var (
		sp    = es.Params
		sweep func(diag float64)
		diag  = 2. * (es.DeltaInvSq.X + es.DeltaInvSq.Y + es.DeltaInvSq.Z)
	)
	switch sp.Ordering {
	case RedBlack:
		sweep = es.sweepRedBlack
	default:
		sweep = es.sweepLexicographic
	}
	es.Iterations = 0
	for es.Iterations < sp.MaxIterations {
		sweep(diag)
		es.Iterations++
		if (es.Iterations-1)%sp.CheckInterval == 0 {
			es.Residual = es.ResidualNorm()
			if es.Residual <= sp.Tolerance {
				return
			}
		}
	}
	err = &NonConvergenceError{
		Tolerance:     sp.Tolerance,
		MaxIterations: sp.MaxIterations,
		Residual:      es.Residual,
	}
	return
}

// Cells later in a sweep see the values already written for earlier cells
func (es *Electrostatic) sweepLexicographic(diag float64) {
	var (
		nx, ny, nz = es.Cells.X, es.Cells.Y, es.Cells.Z
		P          = es.Potential
	)
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			for k := 1; k < nz-1; k++ {
				es.relax(P.Index(i, j, k), diag)
			}
		}
	}
}

func (es *Electrostatic) sweepRedBlack(diag float64) {
	var (
		nx, ny, nz = es.Cells.X, es.Cells.Y, es.Cells.Z
		P          = es.Potential
	)
	for color := 0; color < 2; color++ {
		for i := 1; i < nx-1; i++ {
			for j := 1; j < ny-1; j++ {
				kStart := 1
				if (i+j+kStart)%2 != color {
					kStart++
				}
				for k := kStart; k < nz-1; k += 2 {
					es.relax(P.Index(i, j, k), diag)
				}
			}
		}
	}
}

func (es *Electrostatic) relax(ind int, diag float64) {
	var (
		p          = es.Potential.Data
		rOff, pOff = es.Potential.ROffset, es.Potential.POffset
		dInv       = es.DeltaInvSq
	)
	pNew := (es.ChargeDensity.Data[ind]*constants.InvVacuumPermittivity +
		dInv.X*(p[ind+1]+p[ind-1]) +
		dInv.Y*(p[ind+rOff]-p[ind-rOff]) +
		dInv.Z*(p[ind+pOff]-p[ind-pOff])) / diag
	p[ind] += es.Params.Omega * (pNew - p[ind])
}

func (es *Electrostatic) residualAt(ind int, diag float64) float64 {
	var (
		p          = es.Potential.Data
		rOff, pOff = es.Potential.ROffset, es.Potential.POffset
		dInv       = es.DeltaInvSq
	)
	return -p[ind]*diag +
		es.ChargeDensity.Data[ind]*constants.InvVacuumPermittivity +
		dInv.X*(p[ind+1]+p[ind-1]) +
		dInv.Y*(p[ind+rOff]-p[ind-rOff]) +
		dInv.Z*(p[ind+pOff]-p[ind-pOff])
}

// ResidualNorm is sqrt(sum(r^2)/N) over the interior nodes, N being the total
// node count including the boundary.
func (es *Electrostatic) ResidualNorm() float64 {
	var (
		nx, ny, nz = es.Cells.X, es.Cells.Y, es.Cells.Z
		diag       = 2. * (es.DeltaInvSq.X + es.DeltaInvSq.Y + es.DeltaInvSq.Z)
		sum        float64
	)
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			for k := 1; k < nz-1; k++ {
				r := es.residualAt(es.Potential.Index(i, j, k), diag)
				sum += r * r
			}
		}
	}
	return math.Sqrt(sum / float64(nx*ny*nz))
}
