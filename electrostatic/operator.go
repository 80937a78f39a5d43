package electrostatic

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopic/constants"
)

// AssembleOperator builds the discrete operator the relaxation sweeps solve,
// one row per interior node and one column per grid node. rows[n] is the
// linear grid index of row n. The coefficients are exactly those used by the
// sweep, so A*phi + rho/eps0 is the residual.
func (es *Electrostatic) AssembleOperator() (A *sparse.CSR, rows []int) {
	var (
		nx, ny, nz = es.Cells.X, es.Cells.Y, es.Cells.Z
		P          = es.Potential
		rOff, pOff = P.ROffset, P.POffset
		dInv       = es.DeltaInvSq
		diag       = 2. * (dInv.X + dInv.Y + dInv.Z)
		nInterior  = (nx - 2) * (ny - 2) * (nz - 2)
	)
	rows = make([]int, 0, nInterior)
	dok := sparse.NewDOK(nInterior, P.Len())
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			for k := 1; k < nz-1; k++ {
				row, ind := len(rows), P.Index(i, j, k)
				dok.Set(row, ind, -diag)
				dok.Set(row, ind+1, dInv.X)
				dok.Set(row, ind-1, dInv.X)
				dok.Set(row, ind+rOff, dInv.Y)
				dok.Set(row, ind-rOff, -dInv.Y)
				dok.Set(row, ind+pOff, dInv.Z)
				dok.Set(row, ind-pOff, -dInv.Z)
				rows = append(rows, ind)
			}
		}
	}
	A = dok.ToCSR()
	return
}

// SparseResidualNorm evaluates the same norm as ResidualNorm through the
// assembled operator.
func (es *Electrostatic) SparseResidualNorm() float64 {
	var (
		A, rows = es.AssembleOperator()
		phi     = mat.NewVecDense(es.Potential.Len(), es.Potential.Data)
		Aphi    mat.VecDense
	)
	Aphi.MulVec(A, phi)
	r := Aphi.RawVector().Data
	for row, ind := range rows {
		r[row] += es.ChargeDensity.Data[ind] * constants.InvVacuumPermittivity
	}
	return math.Sqrt(floats.Dot(r, r) / float64(es.Potential.Len()))
}
