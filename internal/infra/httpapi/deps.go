package httpapi

import (
	"log/slog"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
)

// Dependencies holds everything the HTTP handlers need.
type Dependencies struct {
	Solve    *usecase.SolveLanding
	Sweep    *usecase.DragSweep
	Defaults domain.DefaultsConfig
	Version  string
	Logger   *slog.Logger
}
