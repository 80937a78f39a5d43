package utils

import "fmt"

type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [3]string{"x", "y", "z"}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", a)
}

// Triplet holds any quantity that has (x, y, z) components: sizes, cell
// counts, spacings and vector values.
type Triplet[T any] struct {
	X, Y, Z T
}

func NewTriplet[T any](x, y, z T) Triplet[T] {
	return Triplet[T]{X: x, Y: y, Z: z}
}

func NewTripletFromArray[T any](a [3]T) Triplet[T] {
	return Triplet[T]{X: a[0], Y: a[1], Z: a[2]}
}

func (t Triplet[T]) Component(axis Axis) (c T) {
	switch axis {
	case AxisX:
		c = t.X
	case AxisY:
		c = t.Y
	case AxisZ:
		c = t.Z
	default:
		panic(fmt.Errorf("invalid axis %d", axis))
	}
	return
}

func (t Triplet[T]) Array() [3]T {
	return [3]T{t.X, t.Y, t.Z}
}

func (t Triplet[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.X, t.Y, t.Z)
}
