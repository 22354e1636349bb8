// Package mathx holds small generic integer helpers shared by the solvers.
package mathx

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x. Abs of the minimum value of T
// overflows and returns it unchanged, as two's complement negation does.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan returns |x1-x2| + |y1-y2|.
func Manhattan[T constraints.Signed](x1, y1, x2, y2 T) T {
	return Abs(x1-x2) + Abs(y1-y2)
}
