package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/infra/logger"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
	"github.com/spf13/cobra"
)

var launchArgNames = []string{"v0", "theta_deg", "m", "g", "k"}

func solveCmd() *cobra.Command {
	var workspace string
	var format string
	var strict bool
	var save bool

	c := &cobra.Command{
		Use:   "solve <v0> <theta_deg> [<m> <g> <k>]",
		Short: "Compute landing distance and flight time for one launch",
		Long: `Compute where a projectile launched from ground level lands.

With two arguments, mass, gravity and drag come from the workspace
configuration (or the built-in defaults 1 kg, 9.8 m/s^2, 0 kg/s).
A drag of 0 uses the closed form; any other value runs Newton's method.`,
		Example: "  projectile solve 20 45 1 9.8 0.1\n  projectile solve 20 45 --format json",
		Args:    launchArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspaceOrDefaults(workspace)
			if err != nil {
				return err
			}
			if save && ws.root == "" {
				return fmt.Errorf("--save needs a workspace (tip: run `projectile init`)")
			}

			p, err := parseLaunch(args, ws.cfg.Defaults)
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

			opts := []usecase.SolveOption{usecase.WithLogger(logger.L())}
			if save {
				opts = append(opts, usecase.WithStore(ws.store))
			}
			uc := usecase.NewSolveLanding(opts...)

			r, runID, err := uc.Execute(cmd.Context(), p)
			if err != nil {
				return err
			}

			if err := printLanding(cmd.OutOrStdout(), p, r, runID, format); err != nil {
				return err
			}

			if strict && !r.Converged {
				return fmt.Errorf("solver stopped after %d iteration(s): %w", r.Iterations, r.Stop.Err())
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from projectile.yaml)")
	c.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when the solver does not converge")
	c.Flags().BoolVar(&save, "save", false, "Save the result as a run artifact under runs/")
	return c
}

// launchArgs accepts <v0> <theta> or the full five-value form.
func launchArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 && len(args) != 5 {
		return fmt.Errorf("accepts 2 or 5 arg(s) (%s), received %d", strings.Join(launchArgNames, " "), len(args))
	}
	return nil
}

func parseLaunch(args []string, d domain.DefaultsConfig) (domain.LaunchParameters, error) {
	vals := []float64{0, 0, d.Mass, d.Gravity, d.Drag}
	for i, a := range args {
		f, err := parseFloatArg(launchArgNames[i], a)
		if err != nil {
			return domain.LaunchParameters{}, err
		}
		vals[i] = f
	}
	return domain.LaunchParameters{
		InitialVelocity:    vals[0],
		LaunchAngleDegrees: vals[1],
		Mass:               vals[2],
		Gravity:            vals[3],
		DragCoefficient:    vals[4],
	}, nil
}

func parseFloatArg(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &domain.OpError{
			Op:   "cli.parse_args",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("argument %s: %q is not a number: %w", name, s, domain.ErrInvalidInput),
		}
	}
	return f, nil
}
