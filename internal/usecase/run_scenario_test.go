package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

func demoScenario() domain.Scenario {
	yes := true
	gt, lt := 40.7, 40.9
	return domain.Scenario{
		Name: "Demo",
		Launches: []domain.LaunchSpec{
			{
				Name:   "vacuum",
				Params: launch(20, 45, 0),
				Expect: domain.ExpectSpec{
					Converged: &yes,
					JSONPath: map[string]domain.JSONPathExpectation{
						"$.distance": {Gt: &gt, Lt: &lt},
					},
				},
			},
			{
				Name:   "drag",
				Params: launch(20, 45, 0.1),
				Expect: domain.ExpectSpec{Converged: &yes},
			},
		},
	}
}

func TestRunScenario_SolvesEveryLaunch(t *testing.T) {
	store := &fakeStore{}
	uc := NewRunScenario(fakeScenarioLoader{sc: demoScenario()}, nil, store)

	run, id, err := uc.Execute(context.Background(), "scenarios/demo.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "run-123" || !store.saved {
		t.Fatalf("expected run to be saved, id=%q", id)
	}
	if run.ScenarioName != "Demo" || run.ScenarioPath != "scenarios/demo.yaml" {
		t.Fatalf("unexpected run header %+v", run)
	}
	if len(run.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(run.Results))
	}
	for _, sr := range run.Results {
		if sr.Error != nil {
			t.Fatalf("unexpected shot error %+v", sr.Error)
		}
		for _, e := range sr.Expectations {
			if !e.Passed {
				t.Fatalf("%s: expectation failed: %+v", sr.Name, e)
			}
		}
	}
	if len(run.Results[0].Expectations) != 3 {
		t.Fatalf("expected 3 expectations on first launch, got %d", len(run.Results[0].Expectations))
	}
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestRunScenario_InvalidLaunchIsRecordedAndRunContinues(t *testing.T) {
	sc := domain.Scenario{
		Name: "Mixed",
		Launches: []domain.LaunchSpec{
			{Name: "bad", Params: launch(20, 120, 0)},
			{Name: "good", Params: launch(20, 45, 0)},
		},
	}
	uc := NewRunScenario(fakeScenarioLoader{sc: sc}, nil, nil)

	run, id, err := uc.Execute(context.Background(), "x.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id without store, got %q", id)
	}
	if run.Results[0].Error == nil || run.Results[0].Error.Kind != domain.KindInvalidInput {
		t.Fatalf("expected invalid input on first launch, got %+v", run.Results[0])
	}
	if run.Results[1].Error != nil || run.Results[1].Result.FlightTime == 0 {
		t.Fatalf("expected second launch to be solved, got %+v", run.Results[1])
	}
}

func TestRunScenario_LoadError(t *testing.T) {
	loadErr := errors.New("scenario not found")
	uc := NewRunScenario(errScenarioLoader{err: loadErr}, nil, nil)
	_, _, err := uc.Execute(context.Background(), "missing.yaml")
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestRunScenario_StopsOnContextCancel(t *testing.T) {
	obs := &recordingObserver{}
	store := &fakeStore{}
	uc := NewRunScenario(fakeScenarioLoader{sc: demoScenario()}, NewSolveLanding(WithObserver(obs)), store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, id, err := uc.Execute(ctx, "demo.yaml")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if id != "" || store.saved {
		t.Fatalf("expected nothing saved, id=%q", id)
	}
	if len(obs.calls) != 0 {
		t.Fatalf("expected 0 solves, got %d", len(obs.calls))
	}
	if out.StartedAt.IsZero() || out.EndedAt.IsZero() {
		t.Fatalf("expected StartedAt and EndedAt set")
	}
}
