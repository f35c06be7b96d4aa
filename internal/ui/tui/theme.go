package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Warn     lipgloss.Style
	Toast    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Label:   lipgloss.NewStyle(),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Toast: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")),
	}
}
