package domain

// LaunchParameters describes one launch in SI units.
// The solver assumes the values already passed validation.
type LaunchParameters struct {
	InitialVelocity    float64 `json:"v0"`      // m/s
	LaunchAngleDegrees float64 `json:"angle"`   // degrees, 0..90
	Mass               float64 `json:"mass"`    // kg
	Gravity            float64 `json:"gravity"` // m/s^2
	DragCoefficient    float64 `json:"drag"`    // kg/s, 0 disables drag
}

// HasDrag reports whether the linear drag term is active.
func (p LaunchParameters) HasDrag() bool {
	return p.DragCoefficient != 0
}

// StopReason records why a solve stopped.
type StopReason string

const (
	StopClosedForm   StopReason = "closed_form"
	StopConverged    StopReason = "converged"
	StopStall        StopReason = "stall"
	StopIterationCap StopReason = "iteration_cap"
)

// Converged reports whether the reason is a successful stop.
func (s StopReason) Converged() bool {
	return s == StopClosedForm || s == StopConverged
}

// Err maps an unsuccessful stop to its sentinel error and returns nil otherwise.
func (s StopReason) Err() error {
	switch s {
	case StopStall:
		return ErrNumericalStall
	case StopIterationCap:
		return ErrIterationCap
	default:
		return nil
	}
}

// LandingResult is produced once per solve and never mutated afterwards.
//
// When Converged is false, Distance and FlightTime hold the best estimate the
// iteration reached before stopping.
type LandingResult struct {
	Distance   float64    `json:"distance"`    // m
	FlightTime float64    `json:"flight_time"` // s
	Converged  bool       `json:"converged"`
	Iterations int        `json:"iterations"`
	Stop       StopReason `json:"stop"`

	// Derivative is dy/dt at FlightTime; zero for the closed form.
	Derivative float64 `json:"derivative"`
}

// SweepPoint is one row of a drag sweep.
type SweepPoint struct {
	DragCoefficient float64       `json:"drag"`
	Result          LandingResult `json:"result"`
}
