package cli

import (
	"fmt"

	"github.com/Zcytxcbyz/projectile/internal/infra/logger"
	"github.com/Zcytxcbyz/projectile/internal/ports"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var workspace string
	var scenario string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run every launch of a scenario and check its expectations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			scenarioPath, err := resolveScenarioPath(ws, scenario)
			if err != nil {
				return err
			}

			if format == "" {
				format = ws.cfg.Output.Format
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			stop := startLogging(cmd, ws.root)
			defer stop()

			var store ports.ArtifactStore = ws.store
			if noSave {
				store = nil
			}

			solve := usecase.NewSolveLanding(usecase.WithLogger(logger.L()))
			uc := usecase.NewRunScenario(ws.scenarios, solve, store)

			run, runID, err := uc.Execute(cmd.Context(), scenarioPath)
			if err != nil {
				// Print what we have; a failed save still leaves a complete run.
				_ = printRun(cmd.OutOrStdout(), run, runID, format)
				return err
			}

			if err := printRun(cmd.OutOrStdout(), run, runID, format); err != nil {
				return err
			}

			if fails := countFailures(run); fails > 0 {
				return fmt.Errorf("run failed (%d failed launch(es))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&scenario, "scenario", "s", "", "Scenario name or path (required)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from projectile.yaml)")

	_ = c.MarkFlagRequired("scenario")
	return c
}
