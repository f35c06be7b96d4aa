package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/solver"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printLanding(w io.Writer, p domain.LaunchParameters, r domain.LandingResult, runID string, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		payload := map[string]any{
			"params": p,
			"result": r,
		}
		if runID != "" {
			payload["run_id"] = runID
		}
		return writeJSON(w, payload)
	}

	fmt.Fprintln(w, "Input Parameters:")
	fmt.Fprintf(w, "  v0     = %.2f m/s\n", p.InitialVelocity)
	fmt.Fprintf(w, "  theta  = %.2f deg\n", p.LaunchAngleDegrees)
	fmt.Fprintf(w, "  m      = %.2f kg\n", p.Mass)
	fmt.Fprintf(w, "  g      = %.2f m/s^2\n", p.Gravity)
	fmt.Fprintf(w, "  k      = %.2f kg/s\n", p.DragCoefficient)
	fmt.Fprintln(w, "Results:")
	fmt.Fprintf(w, "  Distance = %.2f m\n", r.Distance)
	fmt.Fprintf(w, "  Time     = %.2f s\n", r.FlightTime)
	if p.HasDrag() {
		fmt.Fprintf(w, "  Solver   = %s after %d iteration(s)\n", r.Stop, r.Iterations)
	}
	if runID != "" {
		fmt.Fprintf(w, "  Run ID   = %s\n", runID)
	}
	if msg := convergenceWarning(r); msg != "" {
		fmt.Fprintln(w, msg)
	}
	return nil
}

// convergenceWarning is empty for a converged result.
func convergenceWarning(r domain.LandingResult) string {
	switch r.Stop {
	case domain.StopStall:
		return "Warning: Zero derivative encountered"
	case domain.StopIterationCap:
		return fmt.Sprintf("Warning: Max iterations (%d) reached", solver.MaxIterations)
	default:
		return ""
	}
}

func printRun(w io.Writer, run domain.RunResult, runID string, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(w, map[string]any{
			"run_id": runID,
			"run":    run,
		})
	}
	printPrettyRun(w, run, runID)
	return nil
}

func printPrettyRun(w io.Writer, run domain.RunResult, runID string) {
	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Scenario: %s\n", run.ScenarioName)
	fmt.Fprintf(w, "Started:  %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", total)
	if runID != "" {
		fmt.Fprintf(w, "Run ID:   %s\n", runID)
	}
	fmt.Fprintln(w)

	for _, r := range run.Results {
		status := "OK"
		if isShotFailed(r) {
			status = "FAIL"
		}

		fmt.Fprintf(w, "- [%s] %s\n", status, r.Name)

		if r.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", r.Error.Message, r.Error.Kind)
		} else {
			fmt.Fprintf(w, "  distance: %.2f m  time: %.2f s  stop: %s\n", r.Result.Distance, r.Result.FlightTime, r.Result.Stop)
			if msg := convergenceWarning(r.Result); msg != "" {
				fmt.Fprintf(w, "  %s\n", msg)
			}
		}

		if len(r.Expectations) > 0 {
			pass, fail := countExpectationPassFail(r.Expectations)
			fmt.Fprintf(w, "  expectations: %d pass / %d fail\n", pass, fail)
			for _, e := range r.Expectations {
				mark := "✓"
				if !e.Passed {
					mark = "✗"
				}
				fmt.Fprintf(w, "    %s %s: %s\n", mark, e.Name, e.Message)
			}
		}

		fmt.Fprintln(w)
	}
}

func printSweep(w io.Writer, base domain.LaunchParameters, points []domain.SweepPoint, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(w, map[string]any{
			"params": base,
			"points": points,
		})
	}

	fmt.Fprintf(w, "v0 = %.2f m/s  theta = %.2f deg  m = %.2f kg  g = %.2f m/s^2\n\n",
		base.InitialVelocity, base.LaunchAngleDegrees, base.Mass, base.Gravity)
	fmt.Fprintf(w, "%12s  %12s  %10s  %5s  %s\n", "k (kg/s)", "distance (m)", "time (s)", "iter", "stop")
	for _, pt := range points {
		fmt.Fprintf(w, "%12.4f  %12.2f  %10.2f  %5d  %s\n",
			pt.DragCoefficient, pt.Result.Distance, pt.Result.FlightTime, pt.Result.Iterations, pt.Result.Stop)
	}
	return nil
}

func countFailures(run domain.RunResult) int {
	n := 0
	for _, r := range run.Results {
		if isShotFailed(r) {
			n++
		}
	}
	return n
}

func isShotFailed(r domain.ShotResult) bool {
	if r.Error != nil {
		return true
	}
	for _, e := range r.Expectations {
		if !e.Passed {
			return true
		}
	}
	return false
}

func countExpectationPassFail(in []domain.ExpectationResult) (pass int, fail int) {
	for _, e := range in {
		if e.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
