package utils

import "golang.org/x/exp/constraints"

// Number is any element type a grid can do elementwise arithmetic on.
type Number interface {
	constraints.Integer | constraints.Float
}
