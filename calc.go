package sketchlang

import "math"

// EPS is the tolerance for all float comparisons in the package.
const EPS = 1e-10

func floatEq(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}

func isZero(a float64) bool {
	return math.Abs(a) < EPS
}
