package cli

import (
	"fmt"

	"github.com/Zcytxcbyz/projectile/internal/usecase"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var workspace string
	var scenario string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a scenario without solving it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			scenarioPath, err := resolveScenarioPath(ws, scenario)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateScenario(ws.scenarios)
			sc, err := uc.Execute(cmd.Context(), scenarioPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%s: %d launch(es))\n", sc.Name, len(sc.Launches))
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&scenario, "scenario", "s", "", "Scenario name or path (required)")

	_ = c.MarkFlagRequired("scenario")
	return c
}
