package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gopic/electrostatic"
)

// ChargeRegion is an axis aligned box of uniform charge density, corners in meters
type ChargeRegion struct {
	Min     [3]float64 `yaml:"Min"`
	Max     [3]float64 `yaml:"Max"`
	Density float64    `yaml:"Density"` // (C/m^3)
}

// Parameters obtained from the YAML input file. Solver fields left at zero
// take the engine defaults.
type InputParameters3D struct {
	Title         string         `yaml:"Title"`
	Size          [3]float64     `yaml:"Size"`
	Cells         [3]int         `yaml:"Cells"`
	Steps         int            `yaml:"Steps"`
	Omega         float64        `yaml:"Omega"`
	Tolerance     float64        `yaml:"Tolerance"`
	MaxIterations int            `yaml:"MaxIterations"`
	CheckInterval int            `yaml:"CheckInterval"`
	Ordering      string         `yaml:"Ordering"`
	ChargeRegions []ChargeRegion `yaml:"ChargeRegions"`
}

func (ip *InputParameters3D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters3D) SolverParams() (sp electrostatic.SolverParams, err error) {
	sp = electrostatic.DefaultSolverParams()
	if ip.Omega != 0 {
		sp.Omega = ip.Omega
	}
	if ip.Tolerance != 0 {
		sp.Tolerance = ip.Tolerance
	}
	if ip.MaxIterations != 0 {
		sp.MaxIterations = ip.MaxIterations
	}
	if ip.CheckInterval != 0 {
		sp.CheckInterval = ip.CheckInterval
	}
	if sp.Ordering, err = electrostatic.NewOrdering(ip.Ordering); err != nil {
		return
	}
	err = sp.Validate()
	return
}

func (ip *InputParameters3D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%v\t\t= Size\n", ip.Size)
	fmt.Printf("%v\t\t= Cells\n", ip.Cells)
	fmt.Printf("[%d]\t\t\t= Steps\n", ip.Steps)
	if sp, err := ip.SolverParams(); err == nil {
		fmt.Printf("%8.5f\t\t= Omega\n", sp.Omega)
		fmt.Printf("%8.2e\t\t= Tolerance\n", sp.Tolerance)
		fmt.Printf("[%d]\t\t\t= Max Iterations\n", sp.MaxIterations)
		fmt.Printf("[%d]\t\t\t= Check Interval\n", sp.CheckInterval)
		fmt.Printf("[%s]\t\t= Ordering\n", sp.Ordering)
	}
	for i, cr := range ip.ChargeRegions {
		fmt.Printf("ChargeRegions[%d] = %v to %v, %g C/m^3\n", i, cr.Min, cr.Max, cr.Density)
	}
}
