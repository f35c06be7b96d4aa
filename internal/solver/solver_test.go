package solver

import (
	"math"
	"testing"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

const floatEps = 1e-9

func launch(v0, deg, m, g, k float64) domain.LaunchParameters {
	return domain.LaunchParameters{
		InitialVelocity:    v0,
		LaunchAngleDegrees: deg,
		Mass:               m,
		Gravity:            g,
		DragCoefficient:    k,
	}
}

func TestSolve_NoDragMatchesClosedForm(t *testing.T) {
	cases := []struct {
		v0, deg, g float64
	}{
		{20, 45, 9.8},
		{1, 10, 9.81},
		{350, 30, 9.80665},
		{12.5, 89.9, 1.62},
		{5, 90, 3.71},
	}
	for _, c := range cases {
		r := Solve(launch(c.v0, c.deg, 2, c.g, 0))

		theta := c.deg * math.Pi / 180
		wantT := 2 * c.v0 * math.Sin(theta) / c.g
		wantX := c.v0 * math.Cos(theta) * wantT

		if math.Abs(r.FlightTime-wantT) > floatEps {
			t.Errorf("v0=%v deg=%v: flight time %v, want %v", c.v0, c.deg, r.FlightTime, wantT)
		}
		if math.Abs(r.Distance-wantX) > floatEps*math.Max(1, wantX) {
			t.Errorf("v0=%v deg=%v: distance %v, want %v", c.v0, c.deg, r.Distance, wantX)
		}
		if !r.Converged || r.Stop != domain.StopClosedForm || r.Iterations != 0 {
			t.Errorf("v0=%v deg=%v: expected closed form, got %+v", c.v0, c.deg, r)
		}
	}
}

func TestSolve_ZeroAngleNoDrag(t *testing.T) {
	r := Solve(launch(20, 0, 1, 9.8, 0))
	if r.FlightTime != 0 || r.Distance != 0 {
		t.Fatalf("expected 0/0 for a flat launch, got distance=%v time=%v", r.Distance, r.FlightTime)
	}
	if !r.Converged {
		t.Fatalf("closed form always converges")
	}
}

func TestSolve_ReferenceLaunch(t *testing.T) {
	r := Solve(launch(20, 45, 1, 9.8, 0))
	if math.Abs(r.Distance-40.77) > 0.1 {
		t.Fatalf("expected distance ~40.77, got %v", r.Distance)
	}
	if math.Abs(r.FlightTime-2.886) > 1e-3 {
		t.Fatalf("expected flight time ~2.886, got %v", r.FlightTime)
	}
	if !r.Converged {
		t.Fatalf("expected converged")
	}
}

func TestSolve_ReferenceLaunchWithDrag(t *testing.T) {
	r := Solve(launch(20, 45, 1, 9.8, 0.1))
	if !r.Converged {
		t.Fatalf("expected converged, got %+v", r)
	}
	if r.Stop != domain.StopConverged {
		t.Fatalf("expected stop=converged, got %s", r.Stop)
	}
	if !(r.FlightTime < 2.886) {
		t.Fatalf("expected flight time < 2.886, got %v", r.FlightTime)
	}
	if !(r.Distance < 40.77) {
		t.Fatalf("expected distance < 40.77, got %v", r.Distance)
	}
	if r.FlightTime <= 0 || r.Distance <= 0 {
		t.Fatalf("expected a positive landing, got %+v", r)
	}
}

func TestSolve_DragRootResidual(t *testing.T) {
	for _, k := range []float64{0.001, 0.05, 0.1, 0.5, 1, 3, 10} {
		for _, deg := range []float64{5, 30, 45, 60, 85} {
			p := launch(20, deg, 1.5, 9.8, k)
			r := Solve(p)
			if !r.Converged {
				continue
			}

			theta := deg * math.Pi / 180
			dm := newDragMotion(p.Mass, p.Gravity, k, 20*math.Cos(theta), 20*math.Sin(theta))
			if res := math.Abs(dm.height(r.FlightTime)); res > 1e-4 {
				t.Errorf("k=%v deg=%v: residual |y(t)|=%v at t=%v", k, deg, res, r.FlightTime)
			}
		}
	}
}

// heightSeries evaluates y(t) from its power series in k/m, which stays
// accurate where the closed form cancels.
func heightSeries(kOverMass, vy0, g, t float64) float64 {
	var sum float64
	term := t // t^n/n! scaled by (-k/m)^(n-1)
	for n := 1; n <= 40; n++ {
		sum += vy0 * term
		if n >= 2 {
			sum -= g * term / -kOverMass
		}
		term *= -kOverMass * t / float64(n+1)
	}
	return sum
}

func TestSolve_WeakDragRootResidual(t *testing.T) {
	cases := []struct {
		m, k float64
	}{
		{1, 1e-7},
		{1, 1e-6},
		{1, 1e-5},
		{1000, 1e-3},
		{1e-3, 1e-9},
	}
	for _, c := range cases {
		r := Solve(launch(20, 45, c.m, 9.8, c.k))
		if !r.Converged {
			t.Fatalf("m=%v k=%v: expected converged, got %+v", c.m, c.k, r)
		}

		vy0 := 20 * math.Sin(math.Pi/4)
		if res := math.Abs(heightSeries(c.k/c.m, vy0, 9.8, r.FlightTime)); res > 1e-4 {
			t.Errorf("m=%v k=%v: residual |y(t)|=%v at t=%v", c.m, c.k, res, r.FlightTime)
		}
	}
}

func TestSolve_WeakDragIsMonotonic(t *testing.T) {
	prev := Solve(launch(20, 45, 1, 9.8, 0))
	for _, k := range []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3} {
		r := Solve(launch(20, 45, 1, 9.8, k))
		if !(r.FlightTime < prev.FlightTime) {
			t.Errorf("k=%v: flight time %.12f not below %.12f", k, r.FlightTime, prev.FlightTime)
		}
		if !(r.Distance < prev.Distance) {
			t.Errorf("k=%v: distance %.12f not below %.12f", k, r.Distance, prev.Distance)
		}
		prev = r
	}
}

func TestHeightSeriesMatchesClosedForm(t *testing.T) {
	dm := newDragMotion(1, 9.8, 0.01, 10, 10)
	for _, tt := range []float64{0.1, 0.5, 1, 2} {
		want := dm.height(tt)
		if got := heightSeries(0.01, 10, 9.8, tt); math.Abs(got-want) > 1e-9 {
			t.Fatalf("t=%v: series %v, closed form %v", tt, got, want)
		}
	}
}

func TestSolve_DragShortensRangeAndFlight(t *testing.T) {
	vacuum := Solve(launch(30, 40, 2, 9.8, 0))

	for _, k := range []float64{0.01, 0.1, 0.5, 1, 5} {
		r := Solve(launch(30, 40, 2, 9.8, k))
		if !r.Converged {
			t.Fatalf("k=%v: expected converged, got %+v", k, r)
		}
		if !(r.Distance < vacuum.Distance) {
			t.Errorf("k=%v: distance %v not below vacuum %v", k, r.Distance, vacuum.Distance)
		}
		if !(r.FlightTime < vacuum.FlightTime) {
			t.Errorf("k=%v: flight time %v not below vacuum %v", k, r.FlightTime, vacuum.FlightTime)
		}
	}
}

func TestSolve_MoreDragLandsSooner(t *testing.T) {
	prev := Solve(launch(25, 50, 1, 9.8, 0))
	for _, k := range []float64{0.05, 0.2, 0.8, 2} {
		r := Solve(launch(25, 50, 1, 9.8, k))
		if !(r.Distance < prev.Distance && r.FlightTime < prev.FlightTime) {
			t.Fatalf("k=%v: expected shorter landing than previous, got %+v vs %+v", k, r, prev)
		}
		prev = r
	}
}

func TestSolve_ConvergenceFlagIntegrity(t *testing.T) {
	for _, k := range []float64{0.001, 0.1, 10, 100, 1e4, 1e6, 1e8} {
		for _, m := range []float64{0.01, 1, 50} {
			r := Solve(launch(20, 45, m, 9.8, k))
			if r.Converged {
				continue
			}
			capped := r.Iterations == MaxIterations
			stalled := math.Abs(r.Derivative) < Tolerance
			if !capped && !stalled {
				t.Errorf("k=%v m=%v: not converged without cap or stall: %+v", k, m, r)
			}
			if r.Stop == domain.StopConverged || r.Stop == domain.StopClosedForm {
				t.Errorf("k=%v m=%v: inconsistent stop %s", k, m, r.Stop)
			}
		}
	}
}

func TestSolve_HighDragStallsOnNoDragSeed(t *testing.T) {
	// m·g/k falls below the tolerance, so y'(seed) is too flat to step from.
	r := Solve(launch(20, 45, 1, 9.8, 1e8))

	if r.Converged {
		t.Fatalf("expected not converged, got %+v", r)
	}
	if r.Stop != domain.StopStall {
		t.Fatalf("expected stall, got %s", r.Stop)
	}
	if r.Iterations != 0 {
		t.Fatalf("expected stall before any step, got %d iterations", r.Iterations)
	}
	seed := 2 * 20 * math.Sin(math.Pi/4) / 9.8
	if math.Abs(r.FlightTime-seed) > floatEps {
		t.Fatalf("expected seed to be returned, got %v want %v", r.FlightTime, seed)
	}
	if math.IsNaN(r.Distance) || r.Distance < 0 {
		t.Fatalf("expected a finite best-effort distance, got %v", r.Distance)
	}
}

func TestSolve_HighDragStillConvergesWhenSlopeIsUsable(t *testing.T) {
	r := Solve(launch(20, 45, 1, 9.8, 100))
	if !r.Converged {
		t.Fatalf("expected converged, got %+v", r)
	}
	vacuum := Solve(launch(20, 45, 1, 9.8, 0))
	if !(r.FlightTime < vacuum.FlightTime) {
		t.Fatalf("expected drag to shorten flight: %v vs %v", r.FlightTime, vacuum.FlightTime)
	}
}

func TestSolve_ZeroAngleWithDragStalls(t *testing.T) {
	// Seed is t=0 where y'(0) is exactly zero.
	r := Solve(launch(20, 0, 1, 9.8, 0.1))
	if r.Converged || r.Stop != domain.StopStall {
		t.Fatalf("expected stall, got %+v", r)
	}
	if r.FlightTime != 0 || r.Distance != 0 {
		t.Fatalf("expected 0/0 best estimate, got %+v", r)
	}
}

func TestSolveValues(t *testing.T) {
	x, tf, ok := SolveValues(20, 45, 1, 9.8, 0.1)
	r := Solve(launch(20, 45, 1, 9.8, 0.1))
	if x != r.Distance || tf != r.FlightTime || ok != r.Converged {
		t.Fatalf("SolveValues diverged from Solve: (%v,%v,%v) vs %+v", x, tf, ok, r)
	}
}
