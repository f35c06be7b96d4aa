package usecase

import (
	"context"
	"fmt"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/ports"
	"github.com/Zcytxcbyz/projectile/internal/usecase/validate"
)

type ValidateScenario struct {
	scenarios ports.ScenarioLoader
}

func NewValidateScenario(sl ports.ScenarioLoader) *ValidateScenario {
	return &ValidateScenario{scenarios: sl}
}

// Execute loads a scenario and checks every launch against the parameter
// domain without solving anything. It stops at the first invalid launch.
func (uc *ValidateScenario) Execute(ctx context.Context, scenarioPath string) (domain.Scenario, error) {
	sc, err := uc.scenarios.LoadScenario(scenarioPath)
	if err != nil {
		return domain.Scenario{}, err
	}

	for _, l := range sc.Launches {
		if err := ctx.Err(); err != nil {
			return sc, err
		}
		if err := validate.Launch(l.Params); err != nil {
			return sc, fmt.Errorf("launch %q: %w", l.Name, err)
		}
	}

	return sc, nil
}
