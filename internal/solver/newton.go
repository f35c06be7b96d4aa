package solver

import (
	"math"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

// Root is the outcome of a Newton–Raphson search.
type Root struct {
	X          float64
	Iterations int
	Stop       domain.StopReason
	Derivative float64 // df at X
}

// Newton runs Newton–Raphson from x0 with MaxIterations and Tolerance.
func Newton(f, df func(float64) float64, x0 float64) Root {
	return NewtonWith(f, df, x0, MaxIterations, Tolerance)
}

// NewtonWith runs a bounded Newton–Raphson search.
//
// Each pass checks, in order: stall (|df(x)| < tol, x is kept), then steps,
// then the iteration cap, then convergence (|step| <= tol). A cap reached on
// the same pass as convergence is still reported as a cap.
func NewtonWith(f, df func(float64) float64, x0 float64, maxIter int, tol float64) Root {
	x := x0
	for n := 0; ; {
		d := df(x)
		if math.Abs(d) < tol {
			return Root{X: x, Iterations: n, Stop: domain.StopStall, Derivative: d}
		}

		next := x - f(x)/d
		n++

		if n >= maxIter {
			return Root{X: next, Iterations: n, Stop: domain.StopIterationCap, Derivative: df(next)}
		}
		if math.Abs(next-x) <= tol {
			return Root{X: next, Iterations: n, Stop: domain.StopConverged, Derivative: df(next)}
		}
		x = next
	}
}
