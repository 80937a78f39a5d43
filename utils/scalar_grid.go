package utils

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

var ErrInvalidCells = errors.New("invalid grid cell counts")

// ScalarGrid is a dense 3D array stored column major in one buffer: cell
// (i, j, k) lives at Data[i + ROffset*j + POffset*k].
type ScalarGrid[T Number] struct {
	Data             []T
	Cells            Triplet[int]
	ROffset, POffset int
}

func NewScalarGrid[T Number](cells Triplet[int]) (g *ScalarGrid[T], err error) {
	if cells.X < 0 || cells.Y < 0 || cells.Z < 0 {
		err = fmt.Errorf("%w: %v", ErrInvalidCells, cells)
		return
	}
	g = &ScalarGrid[T]{
		Data:    make([]T, cells.X*cells.Y*cells.Z),
		Cells:   cells,
		ROffset: cells.X,
		POffset: cells.X * cells.Y,
	}
	return
}

// Index does no bounds checking, out of range indices alias other cells or panic
func (g *ScalarGrid[T]) Index(i, j, k int) int {
	return i + g.ROffset*j + g.POffset*k
}

func (g *ScalarGrid[T]) At(i, j, k int) T {
	return g.Data[i+g.ROffset*j+g.POffset*k]
}

func (g *ScalarGrid[T]) Set(i, j, k int, val T) {
	g.Data[i+g.ROffset*j+g.POffset*k] = val
}

func (g *ScalarGrid[T]) Len() int { return len(g.Data) }

// Stride is the linear index distance between neighbors along axis
func (g *ScalarGrid[T]) Stride(axis Axis) (s int) {
	switch axis {
	case AxisX:
		s = 1
	case AxisY:
		s = g.ROffset
	case AxisZ:
		s = g.POffset
	default:
		panic(fmt.Errorf("invalid axis %d", axis))
	}
	return
}

func (g *ScalarGrid[T]) Fill(val T) *ScalarGrid[T] { // Changes receiver
	for i := range g.Data {
		g.Data[i] = val
	}
	return g
}

func (g *ScalarGrid[T]) Copy() (R *ScalarGrid[T]) {
	R = &ScalarGrid[T]{
		Data:    slices.Clone(g.Data),
		Cells:   g.Cells,
		ROffset: g.ROffset,
		POffset: g.POffset,
	}
	return
}

func (g *ScalarGrid[T]) Equal(o *ScalarGrid[T]) bool {
	return g.Cells == o.Cells && slices.Equal(g.Data, o.Data)
}

// The grid-grid operators assume identical shapes, nothing is checked.

func (g *ScalarGrid[T]) AddGrid(o *ScalarGrid[T]) *ScalarGrid[T] { // Changes receiver
	for i, val := range o.Data {
		g.Data[i] += val
	}
	return g
}

func (g *ScalarGrid[T]) SubGrid(o *ScalarGrid[T]) *ScalarGrid[T] { // Changes receiver
	for i, val := range o.Data {
		g.Data[i] -= val
	}
	return g
}

func (g *ScalarGrid[T]) MulGrid(o *ScalarGrid[T]) *ScalarGrid[T] { // Changes receiver
	for i, val := range o.Data {
		g.Data[i] *= val
	}
	return g
}

func (g *ScalarGrid[T]) DivGrid(o *ScalarGrid[T]) *ScalarGrid[T] { // Changes receiver
	for i, val := range o.Data {
		g.Data[i] /= val
	}
	return g
}

func (g *ScalarGrid[T]) AddScalar(a T) *ScalarGrid[T] { // Changes receiver
	for i := range g.Data {
		g.Data[i] += a
	}
	return g
}

func (g *ScalarGrid[T]) SubScalar(a T) *ScalarGrid[T] { // Changes receiver
	for i := range g.Data {
		g.Data[i] -= a
	}
	return g
}

func (g *ScalarGrid[T]) MulScalar(a T) *ScalarGrid[T] { // Changes receiver
	for i := range g.Data {
		g.Data[i] *= a
	}
	return g
}

func (g *ScalarGrid[T]) DivScalar(a T) *ScalarGrid[T] { // Changes receiver
	for i := range g.Data {
		g.Data[i] /= a
	}
	return g
}

// All yields (linear index, value) in buffer order
func (g *ScalarGrid[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, val := range g.Data {
			if !yield(i, val) {
				return
			}
		}
	}
}

func (g *ScalarGrid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range g.Data {
			if !yield(val) {
				return
			}
		}
	}
}

// WriteTo dumps one "ScalarGrid(i, j, k) = value" line per cell with k
// varying fastest.
func (g *ScalarGrid[T]) WriteTo(w io.Writer) (n int64, err error) {
	var nn int
	for i := 0; i < g.Cells.X; i++ {
		for j := 0; j < g.Cells.Y; j++ {
			for k := 0; k < g.Cells.Z; k++ {
				nn, err = fmt.Fprintf(w, "ScalarGrid(%d, %d, %d) = %v\n", i, j, k, g.At(i, j, k))
				n += int64(nn)
				if err != nil {
					return
				}
			}
		}
	}
	return
}

func (g *ScalarGrid[T]) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}
