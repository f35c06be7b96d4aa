package ports

import "github.com/Zcytxcbyz/projectile/internal/domain"

// ScenarioLoader loads scenarios from a source (e.g., filesystem).
type ScenarioLoader interface {
	LoadScenario(path string) (domain.Scenario, error)
	ListScenarios(root string) ([]domain.ScenarioRef, error)
}
