package electrostatic

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopic/constants"
	"github.com/notargets/gopic/utils"
)

func setup(t *testing.T) *Electrostatic {
	es, err := NewElectrostatic([3]float64{1, 2, 3}, [3]int{3, 11, 31})
	require.NoError(t, err)
	return es
}

func TestElectrostatic_New(t *testing.T) {
	es := setup(t)
	cells := utils.NewTriplet(3, 11, 31)
	assert.Equal(t, utils.NewTriplet(1., 2., 3.), es.Size)
	assert.Equal(t, cells, es.Cells)
	assert.Equal(t, utils.NewTriplet(0.5, 0.2, 0.1), es.Delta)
	assert.InDelta(t, 4., es.DeltaInvSq.X, 1.e-12)
	assert.InDelta(t, 25., es.DeltaInvSq.Y, 1.e-12)
	assert.InDelta(t, 100., es.DeltaInvSq.Z, 1.e-10)
	assert.Equal(t, 1./(es.Delta.Y*es.Delta.Y), es.DeltaInvSq.Y)
	empty, err := utils.NewScalarGrid[float64](cells)
	require.NoError(t, err)
	emptyVec, err := utils.NewVectorGrid[float64](cells)
	require.NoError(t, err)
	assert.True(t, es.Potential.Equal(empty))
	assert.True(t, es.ChargeDensity.Equal(empty))
	assert.True(t, es.CellVol.Equal(empty))
	assert.True(t, es.ElectricField.Equal(emptyVec))
	assert.Equal(t, DefaultSolverParams(), es.Params)
	assert.Equal(t, 0, es.Iterations)
}

func TestElectrostatic_NewValidation(t *testing.T) {
	{ // Fewer than 3 cells on an axis
		for _, cells := range [][3]int{{2, 5, 5}, {5, 1, 5}, {5, 5, 0}, {5, 5, -3}} {
			_, err := NewElectrostatic([3]float64{1, 1, 1}, cells)
			assert.ErrorIs(t, err, ErrInvalidShape, "cells = %v", cells)
		}
	}
	{ // Degenerate extents
		for _, size := range [][3]float64{{0, 1, 1}, {1, -1, 1}, {1, 1, math.NaN()}, {1, math.Inf(1), 1}} {
			_, err := NewElectrostatic(size, [3]int{3, 3, 3})
			assert.ErrorIs(t, err, ErrInvalidSize, "size = %v", size)
		}
	}
	{ // Solver parameters
		bad := []func(sp *SolverParams){
			func(sp *SolverParams) { sp.Omega = 2 },
			func(sp *SolverParams) { sp.Omega = 0 },
			func(sp *SolverParams) { sp.Tolerance = -1 },
			func(sp *SolverParams) { sp.MaxIterations = 0 },
			func(sp *SolverParams) { sp.CheckInterval = 0 },
			func(sp *SolverParams) { sp.Ordering = Ordering(7) },
		}
		for _, f := range bad {
			sp := DefaultSolverParams()
			f(&sp)
			es, err := NewElectrostaticWithParams([3]float64{1, 1, 1}, [3]int{3, 3, 3}, sp)
			assert.ErrorIs(t, err, ErrInvalidParams)
			assert.Nil(t, es)
		}
	}
}

func TestOrdering(t *testing.T) {
	o, err := NewOrdering("Red-Black")
	require.NoError(t, err)
	assert.Equal(t, RedBlack, o)
	o, err = NewOrdering("")
	require.NoError(t, err)
	assert.Equal(t, Lexicographic, o)
	_, err = NewOrdering("jacobi")
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.Equal(t, "Red-Black", RedBlack.String())
}

func TestElectrostatic_ZeroCharge(t *testing.T) {
	es, err := NewElectrostatic([3]float64{1, 1, 1}, [3]int{6, 7, 8})
	require.NoError(t, err)
	require.NoError(t, es.Update())
	assert.Equal(t, 1, es.Iterations)
	assert.Equal(t, 0., es.Residual)
	for val := range es.Potential.Values() {
		assert.Equal(t, 0., val)
	}
	for _, axis := range []utils.Axis{utils.AxisX, utils.AxisY, utils.AxisZ} {
		for val := range es.ElectricField.Component(axis).Values() {
			assert.Equal(t, 0., val)
		}
	}
}

func TestElectrostatic_SingleInteriorNode(t *testing.T) {
	// With one interior node the relaxation is a scalar contraction by (1 - omega)
	es, err := NewElectrostatic([3]float64{1, 1, 1}, [3]int{3, 3, 3})
	require.NoError(t, err)
	rho := 1.e-12
	es.ChargeDensity.Set(1, 1, 1, rho)
	require.NoError(t, es.Update())
	assert.Equal(t, 26, es.Iterations)
	assert.LessOrEqual(t, es.Residual, es.Params.Tolerance)
	expected := rho * constants.InvVacuumPermittivity / 24.
	assert.InDelta(t, expected, es.Potential.At(1, 1, 1), 1.e-9)
	// Boundary nodes are never touched
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, 0., es.Potential.At(i, j, 0))
			assert.Equal(t, 0., es.Potential.At(i, j, 2))
		}
	}
	// The field points away from a positive charge
	assert.Less(t, es.ElectricField.X.At(0, 1, 1), 0.)
	assert.Greater(t, es.ElectricField.X.At(2, 1, 1), 0.)
	assert.InDelta(t, 0., es.ElectricField.X.At(1, 1, 1), 1.e-12)
	{ // Warm start: the potential carries over, so the next solve is done on its first check
		require.NoError(t, es.Update())
		assert.Equal(t, 1, es.Iterations)
		assert.InDelta(t, expected, es.Potential.At(1, 1, 1), 1.e-9)
	}
}

func TestElectrostatic_WarmStart(t *testing.T) {
	sp := DefaultSolverParams()
	sp.Omega = 1.
	es, err := NewElectrostaticWithParams([3]float64{1, 1, 1}, [3]int{5, 5, 5}, sp)
	require.NoError(t, err)
	es.ChargeDensity.Set(2, 2, 2, 1.e-12)
	require.NoError(t, es.Update())
	assert.Equal(t, 26, es.Iterations)
	phi := es.Potential.Copy()
	E := es.ElectricField.X.Copy()
	require.NoError(t, es.Update())
	assert.Equal(t, 1, es.Iterations)
	for ind, val := range es.Potential.All() {
		assert.InDelta(t, phi.Data[ind], val, 1.e-9)
	}
	for ind, val := range es.ElectricField.X.All() {
		assert.InDelta(t, E.Data[ind], val, 1.e-6)
	}
}

func TestElectrostatic_RedBlack(t *testing.T) {
	var phi [2]*utils.ScalarGrid[float64]
	for n, ordering := range []Ordering{Lexicographic, RedBlack} {
		sp := DefaultSolverParams()
		sp.Omega = 1.
		sp.Ordering = ordering
		es, err := NewElectrostaticWithParams([3]float64{1, 1, 1}, [3]int{5, 5, 5}, sp)
		require.NoError(t, err)
		es.ChargeDensity.Set(2, 2, 2, 1.e-12)
		require.NoError(t, es.Update(), "ordering %s", ordering)
		assert.LessOrEqual(t, es.ResidualNorm(), sp.Tolerance)
		phi[n] = es.Potential
	}
	// Both orderings converge to the same discrete solution
	for ind, val := range phi[0].All() {
		assert.InDelta(t, val, phi[1].Data[ind], 1.e-6)
	}
}

func TestElectrostatic_NonConvergence(t *testing.T) {
	sp := DefaultSolverParams()
	sp.Tolerance = 0
	sp.MaxIterations = 50
	es, err := NewElectrostaticWithParams([3]float64{1, 1, 1}, [3]int{3, 3, 3}, sp)
	require.NoError(t, err)
	es.ChargeDensity.Set(1, 1, 1, 1.e-12)
	es.ElectricField.X.Fill(42)
	err = es.Update()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConverged))
	var nce *NonConvergenceError
	require.True(t, errors.As(err, &nce))
	assert.Equal(t, 0., nce.Tolerance)
	assert.Equal(t, 50, nce.MaxIterations)
	assert.Greater(t, nce.Residual, 0.)
	assert.Equal(t, 50, es.Iterations)
	// The relaxed potential is kept, the field is not recomputed
	assert.NotEqual(t, 0., es.Potential.At(1, 1, 1))
	for val := range es.ElectricField.X.Values() {
		assert.Equal(t, 42., val)
	}
	assert.Contains(t, err.Error(), "50 iterations")
}
