package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

func TestSolveLanding_ReturnsSolverResult(t *testing.T) {
	obs := &recordingObserver{}
	uc := NewSolveLanding(WithObserver(obs))

	r, id, err := uc.Execute(context.Background(), launch(20, 45, 0.1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no artifact id without a store, got %q", id)
	}
	if !r.Converged || r.Stop != domain.StopConverged {
		t.Fatalf("expected converged drag solve, got %+v", r)
	}
	if len(obs.calls) != 1 {
		t.Fatalf("expected observer to be notified once, got %d", len(obs.calls))
	}
}

func TestSolveLanding_InvalidInputSkipsSolverAndObservers(t *testing.T) {
	obs := &recordingObserver{}
	uc := NewSolveLanding(WithObserver(obs))

	_, _, err := uc.Execute(context.Background(), launch(-1, 45, 0))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
	if len(obs.calls) != 0 {
		t.Fatalf("expected no observer calls, got %d", len(obs.calls))
	}
}

func TestSolveLanding_OverflowingResultIsRejected(t *testing.T) {
	obs := &recordingObserver{}
	uc := NewSolveLanding(WithObserver(obs))

	_, _, err := uc.Execute(context.Background(), launch(1e200, 45, 0))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
	if !errors.Is(err, domain.ErrResultOverflow) || !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected overflow and invalid input sentinels, got %v", err)
	}
	if len(obs.calls) != 0 {
		t.Fatalf("expected no observer calls, got %d", len(obs.calls))
	}
}

func TestSolveLanding_NonConvergenceIsNotAnError(t *testing.T) {
	uc := NewSolveLanding()
	r, _, err := uc.Execute(context.Background(), launch(20, 45, 1e8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Converged {
		t.Fatalf("expected stall, got %+v", r)
	}
	if !errors.Is(r.Stop.Err(), domain.ErrNumericalStall) {
		t.Fatalf("expected stall sentinel, got %v", r.Stop.Err())
	}
}

func TestSolveLanding_SavesArtifact(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store := &fakeStore{}
	uc := NewSolveLanding(WithStore(store), WithClock(func() time.Time { return now }))

	r, id, err := uc.Execute(context.Background(), launch(20, 45, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "run-123" {
		t.Fatalf("expected run id, got %q", id)
	}
	if !store.saved {
		t.Fatalf("expected artifact to be saved")
	}
	if len(store.last.Results) != 1 || store.last.Results[0].Result != r {
		t.Fatalf("expected artifact to carry the result, got %+v", store.last)
	}
	if !store.last.StartedAt.Equal(now) {
		t.Fatalf("expected injected clock, got %v", store.last.StartedAt)
	}
}

func TestSolveLanding_StoreErrorKeepsResult(t *testing.T) {
	saveErr := errors.New("disk full")
	uc := NewSolveLanding(WithStore(&fakeStore{err: saveErr}))

	r, _, err := uc.Execute(context.Background(), launch(20, 45, 0))
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}
	if r.FlightTime == 0 {
		t.Fatalf("expected result to be returned alongside the save error")
	}
}

func TestSolveLanding_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewSolveLanding().Execute(ctx, launch(20, 45, 0))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
