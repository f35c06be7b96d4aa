package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

// MaxSweepSteps bounds the work a single sweep may request.
const MaxSweepSteps = 10000

// SweepRange is an inclusive, evenly spaced range of drag coefficients.
type SweepRange struct {
	From  float64
	To    float64
	Steps int
}

// Values returns the drag coefficients of the range. A single step yields From.
func (r SweepRange) Values() []float64 {
	if r.Steps <= 1 {
		return []float64{r.From}
	}
	out := make([]float64, r.Steps)
	width := (r.To - r.From) / float64(r.Steps-1)
	for i := range out {
		out[i] = r.From + width*float64(i)
	}
	out[len(out)-1] = r.To
	return out
}

func (r SweepRange) validate() error {
	var msg string
	switch {
	case math.IsNaN(r.From) || math.IsNaN(r.To) || math.IsInf(r.From, 0) || math.IsInf(r.To, 0):
		msg = "bounds must be finite"
	case r.From < 0:
		msg = fmt.Sprintf("from must be >= 0, got %g", r.From)
	case r.To < r.From:
		msg = fmt.Sprintf("to (%g) must be >= from (%g)", r.To, r.From)
	case r.Steps < 1 || r.Steps > MaxSweepSteps:
		msg = fmt.Sprintf("steps must be within [1, %d], got %d", MaxSweepSteps, r.Steps)
	default:
		return nil
	}
	return &domain.OpError{
		Op:   "usecase.drag_sweep",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidInput),
	}
}

// DragSweep solves one launch across a range of drag coefficients.
type DragSweep struct {
	solve *SolveLanding
}

func NewDragSweep(solve *SolveLanding) *DragSweep {
	if solve == nil {
		solve = NewSolveLanding()
	}
	return &DragSweep{solve: solve}
}

// Execute ignores base.DragCoefficient and solves once per value of rng.
func (uc *DragSweep) Execute(ctx context.Context, base domain.LaunchParameters, rng SweepRange) ([]domain.SweepPoint, error) {
	if err := rng.validate(); err != nil {
		return nil, err
	}

	ks := rng.Values()
	out := make([]domain.SweepPoint, 0, len(ks))
	for _, k := range ks {
		p := base
		p.DragCoefficient = k

		r, _, err := uc.solve.Execute(ctx, p)
		if err != nil {
			return out, err
		}
		out = append(out, domain.SweepPoint{DragCoefficient: k, Result: r})
	}
	return out, nil
}
