package tui

import (
	"log/slog"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/ports"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	// Solve backs the solve form; nil gets a plain use case.
	Solve *usecase.SolveLanding

	// Defaults prefill mass, gravity and drag.
	Defaults domain.DefaultsConfig

	Logger *slog.Logger
	Debug  bool
}
