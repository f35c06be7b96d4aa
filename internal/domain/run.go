package domain

import "time"

// ExpectationResult is the outcome of a single expectation check.
type ExpectationResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// ShotError is a structured error attached to a launch that could not be solved.
type ShotError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewShotError builds a ShotError from any error, keeping its kind when known.
func NewShotError(err error) *ShotError {
	if err == nil {
		return nil
	}
	return &ShotError{Kind: KindOf(err), Message: err.Error()}
}

// ShotResult is the outcome of one launch of a scenario run.
type ShotResult struct {
	Name         string              `json:"name"`
	Params       LaunchParameters    `json:"params"`
	Result       LandingResult       `json:"result"`
	Expectations []ExpectationResult `json:"expectations"`
	Error        *ShotError          `json:"error,omitempty"`
}

// RunResult is the outcome of running every launch of a scenario.
// It doubles as the persisted run artifact.
type RunResult struct {
	ScenarioName string       `json:"scenario_name"`
	ScenarioPath string       `json:"scenario_path"`
	StartedAt    time.Time    `json:"started_at"`
	EndedAt      time.Time    `json:"ended_at"`
	Results      []ShotResult `json:"results"`
}
