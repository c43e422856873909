package anim

import "math"

// EaseInOutSine maps [0, 1] onto [0, 1] with a sine S-curve.
func EaseInOutSine(x float64) float64 {
	return -(math.Cos(math.Pi*x) - 1) / 2
}

// Lerp moves from toward to by factor.
func Lerp(from, to, factor float64) float64 {
	return from + (to-from)*factor
}
