// Package xmath contains the integer helpers shared by the alignment computations.
package xmath

import (
	"golang.org/x/exp/constraints"
)

// RoundUp returns the smallest multiple of alignment that is >= v.
// A non-positive alignment returns v unchanged.
func RoundUp[T constraints.Integer](v, alignment T) T {
	if alignment <= 0 {
		return v
	}
	return DivCeil(v, alignment) * alignment
}

// DivCeil divides rounding towards positive infinity; divisor must be positive.
func DivCeil[T constraints.Integer](v, divisor T) T {
	q := v / divisor
	if v%divisor > 0 {
		q++
	}
	return q
}

func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
