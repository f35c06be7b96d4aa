package cli

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zcytxcbyz/projectile/internal/buildinfo"
	"github.com/Zcytxcbyz/projectile/internal/infra/httpapi"
	"github.com/Zcytxcbyz/projectile/internal/infra/logger"
	"github.com/Zcytxcbyz/projectile/internal/infra/metrics"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var workspace string
	var addr string
	var logLevel string
	var logFormat string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP with Prometheus metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspaceOrDefaults(workspace)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = ws.cfg.Server.Addr
			}
			if debugEnabled(cmd) {
				logLevel = "debug"
			}

			log := logger.SetupConsole(cmd.OutOrStdout(), logLevel, logFormat)

			solve := usecase.NewSolveLanding(
				usecase.WithLogger(log),
				usecase.WithObserver(metrics.NewObserver()),
			)
			app := httpapi.NewApp(&httpapi.Dependencies{
				Solve:    solve,
				Sweep:    usecase.NewDragSweep(solve),
				Defaults: ws.cfg.Defaults,
				Version:  buildinfo.Version,
				Logger:   log,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("api server starting", "addr", addr, "version", buildinfo.Version)
				errCh <- app.Listen(addr)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutdown signal received, draining connections")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("forced shutdown", slog.Any("error", err))
				return err
			}

			log.Info("server stopped")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&addr, "addr", "", "Listen address (default from projectile.yaml, :8080)")
	c.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	c.Flags().StringVar(&logFormat, "log-format", "json", "Log format: json|text")
	return c
}
