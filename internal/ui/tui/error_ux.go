package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlscenario") {
				return "Scenario not found"
			}
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidInput:
			return invalidInputMessage(oe.Err)

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, domain.ErrNumericalStall) {
		return "Solver stalled: zero derivative"
	}
	if errors.Is(err, domain.ErrIterationCap) {
		return "Solver hit the iteration cap"
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

// invalidInputMessage shows the first violation and counts the rest.
func invalidInputMessage(err error) string {
	if err == nil {
		return "Invalid input"
	}
	s := strings.TrimSuffix(err.Error(), ": "+domain.ErrInvalidInput.Error())
	parts := strings.Split(s, "; ")
	msg := "Invalid input: " + strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		msg += fmt.Sprintf(" (+%d more)", len(parts)-1)
	}
	return msg
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
