package Electrostatic3D

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/notargets/gopic/InputParameters"
	"github.com/notargets/gopic/electrostatic"
	"github.com/notargets/gopic/utils"
)

const DefaultSteps = 10

type Model struct {
	Title   string
	Steps   int
	ES      *electrostatic.Electrostatic
	Regions []InputParameters.ChargeRegion
}

func NewModel(ip *InputParameters.InputParameters3D) (m *Model, err error) {
	var (
		sp electrostatic.SolverParams
		es *electrostatic.Electrostatic
	)
	if sp, err = ip.SolverParams(); err != nil {
		return
	}
	if es, err = electrostatic.NewElectrostaticWithParams(ip.Size, ip.Cells, sp); err != nil {
		return
	}
	m = &Model{
		Title:   ip.Title,
		Steps:   ip.Steps,
		ES:      es,
		Regions: ip.ChargeRegions,
	}
	if m.Steps <= 0 {
		m.Steps = DefaultSteps
	}
	return
}

// DepositCharge rewrites the charge density from the charge regions. Nodes
// on a region's faces are inside it, overlapping regions add.
func (m *Model) DepositCharge() {
	var (
		es    = m.ES
		rho   = es.ChargeDensity
		cells = es.Cells
		tol   = 1.e-9 * min(es.Delta.X, es.Delta.Y, es.Delta.Z)
	)
	rho.Fill(0)
	for _, cr := range m.Regions {
		var lo, hi [3]int
		for n := 0; n < 3; n++ {
			d := es.Delta.Component(utils.Axis(n))
			last := cells.Component(utils.Axis(n)) - 1
			lo[n] = max(0, int(math.Ceil((cr.Min[n]-tol)/d)))
			hi[n] = min(last, int(math.Floor((cr.Max[n]+tol)/d)))
		}
		for k := lo[2]; k <= hi[2]; k++ {
			for j := lo[1]; j <= hi[1]; j++ {
				for i := lo[0]; i <= hi[0]; i++ {
					ind := rho.Index(i, j, k)
					rho.Data[ind] += cr.Density
				}
			}
		}
	}
}

// Run deposits the charge and updates the fields once per step
func (m *Model) Run() (err error) {
	var (
		es    = m.ES
		start = time.Now()
	)
	fmt.Printf("Electrostatic field solve in 3 Dimensions\n%s\n", m.Title)
	fmt.Printf("Size = %v (m), Cells = %v, Delta = %v (m)\n", es.Size, es.Cells, es.Delta)
	fmt.Printf("Ordering = %s, Omega = %5.3f, Tolerance = %8.2e, Max Iterations = %d\n\n",
		es.Params.Ordering, es.Params.Omega, es.Params.Tolerance, es.Params.MaxIterations)
	for step := 0; step < m.Steps; step++ {
		stepStart := time.Now()
		m.DepositCharge()
		if err = es.Update(); err != nil {
			err = fmt.Errorf("step %d: %w", step, err)
			return
		}
		fmt.Printf("Step %4d: %6d iterations, residual = %10.4e, %v\n",
			step, es.Iterations, es.Residual, time.Since(stepStart))
		if utils.IsNan(es.ElectricField) {
			err = fmt.Errorf("step %d: NaN found in electric field", step)
			return
		}
	}
	fmt.Printf("Completed %d steps in %v\n%s\n", m.Steps, time.Since(start), utils.GetMemUsage())
	return
}

// Dump writes the potential and electric field in their text formats
func (m *Model) Dump(w io.Writer) (err error) {
	if _, err = fmt.Fprintf(w, "# Potential (V)\n"); err != nil {
		return
	}
	if _, err = m.ES.Potential.WriteTo(w); err != nil {
		return
	}
	if _, err = fmt.Fprintf(w, "# Electric Field (V/m)\n"); err != nil {
		return
	}
	_, err = m.ES.ElectricField.WriteTo(w)
	return
}
