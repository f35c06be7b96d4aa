// Package httpapi serves the landing solver over HTTP.
package httpapi

import (
	"io"
	"log/slog"

	"github.com/Zcytxcbyz/projectile/internal/infra/metrics"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the fiber app with middleware and routes registered.
func NewApp(deps *Dependencies) *fiber.App {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if deps.Solve == nil {
		deps.Solve = usecase.NewSolveLanding()
	}
	if deps.Sweep == nil {
		deps.Sweep = usecase.NewDragSweep(deps.Solve)
	}

	app := fiber.New(fiber.Config{
		AppName:               "projectile",
		BodyLimit:             64 * 1024,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	SetupRoutes(app, deps)
	return app
}

// SetupRoutes registers middleware and all routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	app.Use(requestid.New())
	app.Use(AccessLogMiddleware(deps.Logger))

	app.Get("/v1/health", HealthHandler(deps))

	v1 := app.Group("/v1")
	v1.Post("/solve", SolveHandler(deps))
	v1.Post("/sweep", SweepHandler(deps))
}
