package usecase

import (
	"sync"
	"time"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeScenarioLoader struct {
	sc domain.Scenario
}

func (f fakeScenarioLoader) LoadScenario(_ string) (domain.Scenario, error) {
	return f.sc, nil
}
func (f fakeScenarioLoader) ListScenarios(_ string) ([]domain.ScenarioRef, error) {
	return nil, nil
}

type errScenarioLoader struct{ err error }

func (e errScenarioLoader) LoadScenario(_ string) (domain.Scenario, error) {
	return domain.Scenario{}, e.err
}
func (e errScenarioLoader) ListScenarios(_ string) ([]domain.ScenarioRef, error) {
	return nil, e.err
}

type fakeStore struct {
	saved bool
	last  domain.RunResult
	err   error
}

func (s *fakeStore) SaveRun(run domain.RunResult) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = run
	return "run-123", nil
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []domain.LandingResult
}

func (o *recordingObserver) ObserveSolve(_ domain.LaunchParameters, r domain.LandingResult, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, r)
}

func launch(v0, deg, k float64) domain.LaunchParameters {
	return domain.LaunchParameters{
		InitialVelocity:    v0,
		LaunchAngleDegrees: deg,
		Mass:               1,
		Gravity:            9.8,
		DragCoefficient:    k,
	}
}
