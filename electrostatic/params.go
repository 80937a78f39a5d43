package electrostatic

import (
	"fmt"
	"math"
	"strings"
)

type Ordering uint8

const (
	// Lexicographic is the in-place Gauss-Seidel sweep, i outer, k inner
	Lexicographic Ordering = iota
	// RedBlack relaxes every cell with even i+j+k, then every odd one
	RedBlack
)

var (
	OrderingNames = map[string]Ordering{
		"lexicographic": Lexicographic,
		"red-black":     RedBlack,
		"redblack":      RedBlack,
	}
	OrderingPrintNames = []string{"Lexicographic", "Red-Black"}
)

// NewOrdering maps an input deck label to an Ordering, an empty label is Lexicographic
func NewOrdering(label string) (o Ordering, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return Lexicographic, nil
	}
	if o, ok = OrderingNames[label]; !ok {
		err = fmt.Errorf("%w: unable to use ordering named %s", ErrInvalidParams, label)
	}
	return
}

func (o Ordering) String() string {
	if int(o) < len(OrderingPrintNames) {
		return OrderingPrintNames[o]
	}
	return fmt.Sprintf("Ordering(%d)", o)
}

const (
	DefaultOmega         = 1.4
	DefaultCheckInterval = 25
	DefaultMaxIterations = 10000
	DefaultTolerance     = 1.e-5
)

type SolverParams struct {
	Omega         float64 // over-relaxation factor
	Tolerance     float64 // on the L2 residual norm
	MaxIterations int     // sweeps before the solve gives up
	CheckInterval int     // sweeps between residual evaluations, the first sweep is always checked
	Ordering      Ordering
}

func DefaultSolverParams() SolverParams {
	return SolverParams{
		Omega:         DefaultOmega,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		CheckInterval: DefaultCheckInterval,
		Ordering:      Lexicographic,
	}
}

func (sp SolverParams) Validate() (err error) {
	switch {
	case math.IsNaN(sp.Omega) || sp.Omega <= 0 || sp.Omega >= 2:
		err = fmt.Errorf("%w: omega must be in (0, 2), have %v", ErrInvalidParams, sp.Omega)
	case math.IsNaN(sp.Tolerance) || sp.Tolerance < 0:
		err = fmt.Errorf("%w: tolerance must be >= 0, have %v", ErrInvalidParams, sp.Tolerance)
	case sp.MaxIterations < 1:
		err = fmt.Errorf("%w: max iterations must be >= 1, have %d", ErrInvalidParams, sp.MaxIterations)
	case sp.CheckInterval < 1:
		err = fmt.Errorf("%w: check interval must be >= 1, have %d", ErrInvalidParams, sp.CheckInterval)
	case sp.Ordering > RedBlack:
		err = fmt.Errorf("%w: unknown ordering %d", ErrInvalidParams, sp.Ordering)
	}
	return
}
