package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/ports"
	"github.com/Zcytxcbyz/projectile/internal/solver"
	"github.com/Zcytxcbyz/projectile/internal/usecase/validate"
)

// SolveLanding validates a launch, solves it and tells observers about it.
type SolveLanding struct {
	observers []ports.SolveObserver
	store     ports.ArtifactStore
	log       *slog.Logger
	now       func() time.Time
}

type SolveOption func(*SolveLanding)

func WithObserver(o ports.SolveObserver) SolveOption {
	return func(uc *SolveLanding) {
		if o != nil {
			uc.observers = append(uc.observers, o)
		}
	}
}

// WithStore saves every successful solve as a single-launch run artifact.
func WithStore(s ports.ArtifactStore) SolveOption {
	return func(uc *SolveLanding) { uc.store = s }
}

func WithLogger(l *slog.Logger) SolveOption {
	return func(uc *SolveLanding) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) SolveOption {
	return func(uc *SolveLanding) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewSolveLanding(opts ...SolveOption) *SolveLanding {
	uc := &SolveLanding{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the landing for p and, when a store is configured, the id
// of the saved artifact. Non-convergence is not an error: it is reported in
// the result and logged as a warning.
func (uc *SolveLanding) Execute(ctx context.Context, p domain.LaunchParameters) (domain.LandingResult, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.LandingResult{}, "", err
	}

	if err := validate.Launch(p); err != nil {
		uc.log.Debug("solve.invalid_input", "error", err)
		return domain.LandingResult{}, "", err
	}

	started := uc.now()
	r := solver.Solve(p)
	ended := uc.now()

	if !finite(r.Distance) || !finite(r.FlightTime) {
		uc.log.Warn("solve.overflow", "v0", p.InitialVelocity, "distance", r.Distance, "flight_time", r.FlightTime)
		err := fmt.Errorf("distance=%g flight_time=%g: %w: %w",
			r.Distance, r.FlightTime, domain.ErrResultOverflow, domain.ErrInvalidInput)
		return domain.LandingResult{}, "", &domain.OpError{
			Op:   "usecase.solve",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}

	for _, o := range uc.observers {
		o.ObserveSolve(p, r, ended.Sub(started))
	}

	attrs := []any{
		"v0", p.InitialVelocity,
		"angle", p.LaunchAngleDegrees,
		"mass", p.Mass,
		"gravity", p.Gravity,
		"drag", p.DragCoefficient,
		"distance", r.Distance,
		"flight_time", r.FlightTime,
		"iterations", r.Iterations,
		"stop", string(r.Stop),
	}
	if r.Converged {
		uc.log.Debug("solve.done", attrs...)
	} else {
		uc.log.Warn("solve.not_converged", attrs...)
	}

	if uc.store == nil {
		return r, "", nil
	}

	id, err := uc.store.SaveRun(domain.RunResult{
		ScenarioName: "solve",
		StartedAt:    started,
		EndedAt:      ended,
		Results: []domain.ShotResult{{
			Name:         "solve",
			Params:       p,
			Result:       r,
			Expectations: []domain.ExpectationResult{},
		}},
	})
	if err != nil {
		return r, "", err
	}
	return r, id, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
