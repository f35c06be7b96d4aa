package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/solver"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderLanding(t Theme, p domain.LaunchParameters, r domain.LandingResult) string {
	var b strings.Builder

	b.WriteString(t.Title.Render("Landing"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Distance: %.2f m\n", r.Distance))
	b.WriteString(fmt.Sprintf("Time:     %.2f s\n", r.FlightTime))

	if p.HasDrag() {
		b.WriteString(t.Help.Render(fmt.Sprintf("newton: %s after %d iteration(s)", r.Stop, r.Iterations)))
	} else {
		b.WriteString(t.Help.Render("closed form"))
	}

	switch r.Stop {
	case domain.StopStall:
		b.WriteString("\n")
		b.WriteString(t.Warn.Render("⚠ Zero derivative encountered; values are the last estimate"))
	case domain.StopIterationCap:
		b.WriteString("\n")
		b.WriteString(t.Warn.Render(fmt.Sprintf("⚠ Max iterations (%d) reached; values are the last estimate", solver.MaxIterations)))
	}

	return b.String()
}

func renderRun(run domain.RunResult, id string, width int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Scenario: %s\n", run.ScenarioName))
	if id != "" {
		b.WriteString(fmt.Sprintf("Saved:    %s\n", id))
	}
	b.WriteString("\n")

	for _, sr := range run.Results {
		status := "PASS"
		if sr.Error != nil {
			status = "ERR "
		} else {
			for _, e := range sr.Expectations {
				if !e.Passed {
					status = "FAIL"
					break
				}
			}
		}

		line := fmt.Sprintf("[%s] %s", status, sr.Name)
		if sr.Error != nil {
			line += ": " + sr.Error.Message
		} else {
			line += fmt.Sprintf(": %.2f m in %.2f s (%s)", sr.Result.Distance, sr.Result.FlightTime, sr.Result.Stop)
		}
		b.WriteString(clampString(line, width))
		b.WriteString("\n")

		for _, e := range sr.Expectations {
			if !e.Passed {
				b.WriteString(clampString("    ✗ "+e.Message, width))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
