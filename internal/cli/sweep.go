package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Zcytxcbyz/projectile/internal/infra/csvexport"
	"github.com/Zcytxcbyz/projectile/internal/infra/logger"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	var workspace string
	var format string
	var from, to float64
	var steps int
	var csvPath string

	c := &cobra.Command{
		Use:     "sweep <v0> <theta_deg> [<m> <g>]",
		Short:   "Solve one launch across a range of drag coefficients",
		Example: "  projectile sweep 20 45 --from 0 --to 1 --steps 11\n  projectile sweep 20 45 1 9.8 --to 5 --steps 50 --csv out/sweep.csv",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 && len(args) != 4 {
				return fmt.Errorf("accepts 2 or 4 arg(s) (v0 theta_deg m g), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspaceOrDefaults(workspace)
			if err != nil {
				return err
			}

			base, err := parseLaunch(args, ws.cfg.Defaults)
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

			solve := usecase.NewSolveLanding(usecase.WithLogger(logger.L()))
			uc := usecase.NewDragSweep(solve)

			points, err := uc.Execute(cmd.Context(), base, usecase.SweepRange{From: from, To: to, Steps: steps})
			if err != nil {
				return err
			}

			if csvPath != "" {
				p := csvPath
				if !filepath.IsAbs(p) && ws.root != "" {
					p = filepath.Join(ws.root, p)
				}
				if err := csvexport.SaveFile(p, points); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d row(s) to %s\n", len(points), p)
			}

			return printSweep(cmd.OutOrStdout(), base, points, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from projectile.yaml)")
	c.Flags().Float64Var(&from, "from", 0, "First drag coefficient (kg/s)")
	c.Flags().Float64Var(&to, "to", 1, "Last drag coefficient (kg/s)")
	c.Flags().IntVar(&steps, "steps", 11, fmt.Sprintf("Number of evenly spaced values (max %d)", usecase.MaxSweepSteps))
	c.Flags().StringVar(&csvPath, "csv", "", "Also write the rows as CSV to this path")
	return c
}
