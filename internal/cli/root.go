package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/infra/fsworkspace"
	"github.com/Zcytxcbyz/projectile/internal/infra/logger"
	"github.com/Zcytxcbyz/projectile/internal/infra/workspacefinder"
	"github.com/Zcytxcbyz/projectile/internal/ui/tui"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "projectile",
		Short:        "Landing distance and flight time of a projectile, with optional linear drag",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			defaults := domain.DefaultConfig().Defaults
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
				if cfg, cerr := workspacefinder.LoadConfig(root); cerr == nil {
					defaults = cfg.Defaults
				}
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Solve:                usecase.NewSolveLanding(usecase.WithLogger(logger.L())),
				Defaults:             defaults,
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .projectile/logs/projectile.log")

	cmd.AddCommand(
		solveCmd(),
		runCmd(),
		validateCmd(),
		sweepCmd(),
		scenariosCmd(),
		initCmd(),
		serveCmd(),
		versionCmd(),
	)
	return cmd
}
