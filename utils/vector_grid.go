package utils

import (
	"fmt"
	"io"
	"strings"
)

// VectorGrid is three same-shaped ScalarGrids, one per axis component.
type VectorGrid[T Number] struct {
	X, Y, Z *ScalarGrid[T]
}

func NewVectorGrid[T Number](cells Triplet[int]) (v *VectorGrid[T], err error) {
	var x, y, z *ScalarGrid[T]
	if x, err = NewScalarGrid[T](cells); err != nil {
		return
	}
	if y, err = NewScalarGrid[T](cells); err != nil {
		return
	}
	if z, err = NewScalarGrid[T](cells); err != nil {
		return
	}
	v = &VectorGrid[T]{X: x, Y: y, Z: z}
	return
}

func (v *VectorGrid[T]) Cells() Triplet[int] { return v.X.Cells }

func (v *VectorGrid[T]) Component(axis Axis) (g *ScalarGrid[T]) {
	switch axis {
	case AxisX:
		g = v.X
	case AxisY:
		g = v.Y
	case AxisZ:
		g = v.Z
	default:
		panic(fmt.Errorf("invalid axis %d", axis))
	}
	return
}

func (v *VectorGrid[T]) At(i, j, k int) Triplet[T] {
	ind := v.X.Index(i, j, k)
	return Triplet[T]{X: v.X.Data[ind], Y: v.Y.Data[ind], Z: v.Z.Data[ind]}
}

func (v *VectorGrid[T]) Set(i, j, k int, val Triplet[T]) {
	ind := v.X.Index(i, j, k)
	v.X.Data[ind], v.Y.Data[ind], v.Z.Data[ind] = val.X, val.Y, val.Z
}

func (v *VectorGrid[T]) Equal(o *VectorGrid[T]) bool {
	return v.X.Equal(o.X) && v.Y.Equal(o.Y) && v.Z.Equal(o.Z)
}

func (v *VectorGrid[T]) apply(f func(g *ScalarGrid[T])) *VectorGrid[T] {
	f(v.X)
	f(v.Y)
	f(v.Z)
	return v
}

func (v *VectorGrid[T]) AddGrid(o *VectorGrid[T]) *VectorGrid[T] { // Changes receiver
	v.X.AddGrid(o.X)
	v.Y.AddGrid(o.Y)
	v.Z.AddGrid(o.Z)
	return v
}

func (v *VectorGrid[T]) SubGrid(o *VectorGrid[T]) *VectorGrid[T] { // Changes receiver
	v.X.SubGrid(o.X)
	v.Y.SubGrid(o.Y)
	v.Z.SubGrid(o.Z)
	return v
}

func (v *VectorGrid[T]) MulGrid(o *VectorGrid[T]) *VectorGrid[T] { // Changes receiver
	v.X.MulGrid(o.X)
	v.Y.MulGrid(o.Y)
	v.Z.MulGrid(o.Z)
	return v
}

func (v *VectorGrid[T]) DivGrid(o *VectorGrid[T]) *VectorGrid[T] { // Changes receiver
	v.X.DivGrid(o.X)
	v.Y.DivGrid(o.Y)
	v.Z.DivGrid(o.Z)
	return v
}

func (v *VectorGrid[T]) AddScalar(a T) *VectorGrid[T] { // Changes receiver
	return v.apply(func(g *ScalarGrid[T]) { g.AddScalar(a) })
}

func (v *VectorGrid[T]) SubScalar(a T) *VectorGrid[T] { // Changes receiver
	return v.apply(func(g *ScalarGrid[T]) { g.SubScalar(a) })
}

func (v *VectorGrid[T]) MulScalar(a T) *VectorGrid[T] { // Changes receiver
	return v.apply(func(g *ScalarGrid[T]) { g.MulScalar(a) })
}

func (v *VectorGrid[T]) DivScalar(a T) *VectorGrid[T] { // Changes receiver
	return v.apply(func(g *ScalarGrid[T]) { g.DivScalar(a) })
}

// The ScalarGrid variants broadcast s(i,j,k) onto all three components of cell (i,j,k)

func (v *VectorGrid[T]) AddScalarGrid(s *ScalarGrid[T]) *VectorGrid[T] { // Changes receiver
	return v.apply(func(g *ScalarGrid[T]) { g.AddGrid(s) })
}

func (v *VectorGrid[T]) SubScalarGrid(s *ScalarGrid[T]) *VectorGrid[T] { // Changes receiver
	return v.apply(func(g *ScalarGrid[T]) { g.SubGrid(s) })
}

func (v *VectorGrid[T]) MulScalarGrid(s *ScalarGrid[T]) *VectorGrid[T] { // Changes receiver
	return v.apply(func(g *ScalarGrid[T]) { g.MulGrid(s) })
}

func (v *VectorGrid[T]) DivScalarGrid(s *ScalarGrid[T]) *VectorGrid[T] { // Changes receiver
	return v.apply(func(g *ScalarGrid[T]) { g.DivGrid(s) })
}

func (v *VectorGrid[T]) WriteTo(w io.Writer) (n int64, err error) {
	var (
		nn    int
		cells = v.Cells()
	)
	for i := 0; i < cells.X; i++ {
		for j := 0; j < cells.Y; j++ {
			for k := 0; k < cells.Z; k++ {
				ind := v.X.Index(i, j, k)
				nn, err = fmt.Fprintf(w, "VectorGrid(%d, %d, %d) = [%v, %v, %v]\n",
					i, j, k, v.X.Data[ind], v.Y.Data[ind], v.Z.Data[ind])
				n += int64(nn)
				if err != nil {
					return
				}
			}
		}
	}
	return
}

func (v *VectorGrid[T]) String() string {
	var sb strings.Builder
	_, _ = v.WriteTo(&sb)
	return sb.String()
}
