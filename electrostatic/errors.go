package electrostatic

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShape  = errors.New("electrostatic: invalid grid shape")
	ErrInvalidSize   = errors.New("electrostatic: invalid domain size")
	ErrInvalidParams = errors.New("electrostatic: invalid solver parameters")
	ErrNotConverged  = errors.New("electrostatic: potential did not converge")
)

// NonConvergenceError is returned by Update when the potential solve uses up
// its sweeps. The grids keep whatever state the last sweep left.
type NonConvergenceError struct {
	Tolerance     float64
	MaxIterations int
	Residual      float64 // last evaluated L2 residual norm
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("solution to potential did not converge to tolerance of %g in %d iterations, residual = %g",
		e.Tolerance, e.MaxIterations, e.Residual)
}

func (e *NonConvergenceError) Unwrap() error { return ErrNotConverged }
