package usecase

import (
	"context"
	"time"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/ports"
	ucassert "github.com/Zcytxcbyz/projectile/internal/usecase/assert"
)

type RunScenario struct {
	scenarios ports.ScenarioLoader
	solve     *SolveLanding
	store     ports.ArtifactStore
}

// NewRunScenario wires a scenario runner. solve must not carry a store of its
// own; store (optional) receives the whole run.
func NewRunScenario(sl ports.ScenarioLoader, solve *SolveLanding, store ports.ArtifactStore) *RunScenario {
	if solve == nil {
		solve = NewSolveLanding()
	}
	return &RunScenario{
		scenarios: sl,
		solve:     solve,
		store:     store,
	}
}

// Execute solves every launch of the scenario at path and evaluates its
// expectations. Launches that fail validation are recorded and the run
// continues. The run is saved when a store is configured.
func (uc *RunScenario) Execute(ctx context.Context, scenarioPath string) (domain.RunResult, string, error) {
	sc, err := uc.scenarios.LoadScenario(scenarioPath)
	if err != nil {
		return domain.RunResult{}, "", err
	}

	run := domain.RunResult{
		ScenarioName: sc.Name,
		ScenarioPath: scenarioPath,
		StartedAt:    time.Now(),
		Results:      make([]domain.ShotResult, 0, len(sc.Launches)),
	}

	for _, l := range sc.Launches {
		if err := ctx.Err(); err != nil {
			run.EndedAt = time.Now()
			return run, "", err
		}

		r, _, solveErr := uc.solve.Execute(ctx, l.Params)
		if solveErr != nil {
			run.Results = append(run.Results, domain.ShotResult{
				Name:         l.Name,
				Params:       l.Params,
				Expectations: []domain.ExpectationResult{},
				Error:        domain.NewShotError(solveErr),
			})
			continue
		}

		run.Results = append(run.Results, domain.ShotResult{
			Name:         l.Name,
			Params:       l.Params,
			Result:       r,
			Expectations: ucassert.Evaluate(l.Expect, r),
		})
	}

	run.EndedAt = time.Now()

	if uc.store == nil {
		return run, "", nil
	}

	id, err := uc.store.SaveRun(run)
	if err != nil {
		return run, "", err
	}
	return run, id, nil
}
