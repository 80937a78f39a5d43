package electrostatic

import (
	"fmt"
	"math"

	"github.com/notargets/gopic/utils"
)

// Electrostatic solves for the potential and electric field produced by the
// charge density on a uniform structured grid. Boundary nodes hold their
// potential fixed (homogeneous Dirichlet while they stay zero).
type Electrostatic struct {
	Size       utils.Triplet[float64] // (m) size of bounding box
	Cells      utils.Triplet[int]     // nodes along each axis
	Delta      utils.Triplet[float64] // (m) node spacing
	DeltaInvSq utils.Triplet[float64] // (1/m^2)

	Potential     *utils.ScalarGrid[float64] // (V), warm start for the next solve
	ChargeDensity *utils.ScalarGrid[float64] // (C/m^3), written by the deposition step
	ElectricField *utils.VectorGrid[float64] // (V/m)
	CellVol       *utils.ScalarGrid[float64] // (m^3) TODO: fill once cell volumes weight the deposition

	Params     SolverParams
	Iterations int     // sweeps used by the last potential solve
	Residual   float64 // last evaluated L2 residual norm
}

func NewElectrostatic(size [3]float64, cells [3]int) (es *Electrostatic, err error) {
	return NewElectrostaticWithParams(size, cells, DefaultSolverParams())
}

func NewElectrostaticWithParams(size [3]float64, cells [3]int, sp SolverParams) (es *Electrostatic, err error) {
	var (
		Size  = utils.NewTripletFromArray(size)
		Cells = utils.NewTripletFromArray(cells)
	)
	for n := 0; n < 3; n++ {
		// The one sided field stencils reach two nodes in from each boundary
		if cells[n] < 3 {
			err = fmt.Errorf("%w: need at least 3 cells along each axis, have %v", ErrInvalidShape, Cells)
			return
		}
		if !(size[n] > 0) || math.IsInf(size[n], 0) {
			err = fmt.Errorf("%w: extents must be positive and finite, have %v", ErrInvalidSize, Size)
			return
		}
	}
	if err = sp.Validate(); err != nil {
		return
	}
	es = &Electrostatic{
		Size:     Size,
		Cells:    Cells,
		Params:   sp,
		Residual: math.MaxFloat64,
	}
	es.Delta = utils.NewTriplet(
		Size.X/float64(Cells.X-1),
		Size.Y/float64(Cells.Y-1),
		Size.Z/float64(Cells.Z-1))
	es.DeltaInvSq = utils.NewTriplet(
		1./(es.Delta.X*es.Delta.X),
		1./(es.Delta.Y*es.Delta.Y),
		1./(es.Delta.Z*es.Delta.Z))
	if es.Potential, err = utils.NewScalarGrid[float64](Cells); err != nil {
		return nil, err
	}
	if es.ChargeDensity, err = utils.NewScalarGrid[float64](Cells); err != nil {
		return nil, err
	}
	if es.ElectricField, err = utils.NewVectorGrid[float64](Cells); err != nil {
		return nil, err
	}
	if es.CellVol, err = utils.NewScalarGrid[float64](Cells); err != nil {
		return nil, err
	}
	return
}

// Update solves for the potential, then differentiates it into the electric
// field. A failed solve leaves the electric field from the previous Update.
func (es *Electrostatic) Update() (err error) {
	if err = es.solvePotential(); err != nil {
		return
	}
	es.solveElectricField()
	return
}
