package ports

import (
	"time"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

// SolveObserver is notified after every solve, e.g. to record metrics.
// Implementations must be safe for concurrent use.
type SolveObserver interface {
	ObserveSolve(p domain.LaunchParameters, r domain.LandingResult, took time.Duration)
}
