package util

import "golang.org/x/exp/constraints"

// Number covers every type for which Abs is well-defined
type Number interface {
	constraints.Integer | constraints.Float
}

// Max returns the maximum value of inputs x, y
func Max[T constraints.Ordered](x T, y T) T {
	if x > y {
		return x
	}
	return y
}

// Min returns the minimum value of inputs x, y
func Min[T constraints.Ordered](x T, y T) T {
	if x < y {
		return x
	}
	return y
}

// Abs returns the absolute value of x
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
