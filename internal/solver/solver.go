// Package solver finds where and when a launched projectile lands.
//
// Without drag the landing time is the closed form 2·vy0/g. With linear drag
// the vertical equation has no closed form; the landing time is the positive
// root of y(t), found with Newton–Raphson seeded at the no-drag estimate.
//
// Solve is a pure function: no validation, no logging, no shared state.
package solver

import (
	"math"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

const (
	// MaxIterations caps the Newton–Raphson loop.
	MaxIterations = 100
	// Tolerance is both the step size accepted as converged and the
	// smallest |y'(t)| trusted for a step.
	Tolerance = 1e-6
)

// Solve computes the landing distance and flight time for p.
// p must already satisfy the validator's domain; Solve does not re-check it.
func Solve(p domain.LaunchParameters) domain.LandingResult {
	theta := p.LaunchAngleDegrees * math.Pi / 180.0
	vx0 := p.InitialVelocity * math.Cos(theta)
	vy0 := p.InitialVelocity * math.Sin(theta)

	seed := 2.0 * vy0 / p.Gravity

	if !p.HasDrag() {
		return domain.LandingResult{
			Distance:   vx0 * seed,
			FlightTime: seed,
			Converged:  true,
			Stop:       domain.StopClosedForm,
		}
	}

	dm := newDragMotion(p.Mass, p.Gravity, p.DragCoefficient, vx0, vy0)
	root := Newton(dm.height, dm.verticalVelocity, seed)

	return domain.LandingResult{
		Distance:   dm.horizontal(root.X),
		FlightTime: root.X,
		Converged:  root.Stop.Converged(),
		Iterations: root.Iterations,
		Stop:       root.Stop,
		Derivative: root.Derivative,
	}
}

// SolveValues is the flat form of Solve.
func SolveValues(v0, thetaDeg, m, g, k float64) (distance, flightTime float64, converged bool) {
	r := Solve(domain.LaunchParameters{
		InitialVelocity:    v0,
		LaunchAngleDegrees: thetaDeg,
		Mass:               m,
		Gravity:            g,
		DragCoefficient:    k,
	})
	return r.Distance, r.FlightTime, r.Converged
}

// dragMotion is the closed-form kinematics of a point mass under gravity and
// a drag force proportional to velocity.
type dragMotion struct {
	massOverK float64 // m/k
	kOverMass float64 // k/m
	terminal  float64 // m·g/k
	vx0       float64
	vy0       float64
}

func newDragMotion(m, g, k, vx0, vy0 float64) dragMotion {
	return dragMotion{
		massOverK: m / k,
		kOverMass: k / m,
		terminal:  m * g / k,
		vx0:       vx0,
		vy0:       vy0,
	}
}

// height is y(t).
func (d dragMotion) height(t float64) float64 {
	return -d.massOverK*(d.vy0+d.terminal)*math.Expm1(-d.kOverMass*t) - d.terminal*t
}

// verticalVelocity is y'(t).
func (d dragMotion) verticalVelocity(t float64) float64 {
	return d.vy0*math.Exp(-d.kOverMass*t) + d.terminal*math.Expm1(-d.kOverMass*t)
}

// horizontal is x(t).
func (d dragMotion) horizontal(t float64) float64 {
	return -d.massOverK * d.vx0 * math.Expm1(-d.kOverMass*t)
}
