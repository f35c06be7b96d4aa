package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenSolve
	screenScenarios
	screenRunResult
)

const (
	menuSolve     = "Solve"
	menuScenarios = "Scenarios"
	menuInit      = "Init Workspace"
	menuQuit      = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type scenarioItem struct {
	ref domain.ScenarioRef
}

func (s scenarioItem) Title() string       { return s.ref.Name }
func (s scenarioItem) Description() string { return s.ref.Path }
func (s scenarioItem) FilterValue() string { return s.ref.Name }

type model struct {
	theme Theme
	deps  Deps
	solve *usecase.SolveLanding

	scr       screen
	menu      list.Model
	scenarios list.Model
	form      launchForm
	width     int

	lastParams domain.LaunchParameters
	result     *domain.LandingResult

	run     domain.RunResult
	runID   string
	running bool

	toast string

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{menuSolve, "Landing distance and flight time for one launch"},
		menuItem{menuScenarios, "Run scenario files and check expectations"},
		menuItem{menuInit, "Create projectile.yaml and a demo scenario here"},
		menuItem{menuQuit, "Exit"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "projectile"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	sl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	sl.Title = "Scenarios"
	sl.SetShowStatusBar(false)
	sl.SetShowHelp(false)

	solve := deps.Solve
	if solve == nil {
		solve = usecase.NewSolveLanding(usecase.WithLogger(deps.Logger))
	}

	return model{
		theme:     t,
		deps:      deps,
		solve:     solve,
		scr:       screenHome,
		menu:      l,
		scenarios: sl,
		form:      newLaunchForm(deps.Defaults),
		width:     80,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.width = w
		m.menu.SetSize(w-4, h-10)
		m.scenarios.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = ""
		return m, cmdRefreshWorkspace(m.deps)

	case scenariosLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenHome
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, scenarioItem{ref: r})
		}
		cmd := m.scenarios.SetItems(items)
		m.scr = screenScenarios
		return m, cmd

	case solveDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.result = nil
			return m, nil
		}
		r := msg.result
		m.lastParams = msg.params
		m.result = &r
		return m, nil

	case runnerDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		m.run = msg.run
		m.runID = msg.id
		m.scr = screenRunResult
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.toast = ""

		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenSolve:
			return m.updateSolve(msg)
		case screenScenarios:
			return m.updateScenarios(msg)
		case screenRunResult:
			switch msg.String() {
			case "esc", "b", "q":
				m.scr = screenScenarios
			}
			return m, nil
		}
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenSolve:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case screenScenarios:
		var cmd tea.Cmd
		m.scenarios, cmd = m.scenarios.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		switch it.title {
		case menuQuit:
			return m, tea.Quit
		case menuSolve:
			m.scr = screenSolve
			return m, nil
		case menuScenarios:
			if !m.workspaceFound {
				m.toast = "Workspace not found"
				return m, nil
			}
			return m, cmdLoadScenarios(m.workspaceRoot)
		case menuInit:
			wd, err := os.Getwd()
			if err != nil {
				m.toast = userMessage(err)
				return m, nil
			}
			return m, cmdInitWorkspaceHere(m.deps, wd)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateSolve(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenHome
		return m, nil

	case "enter":
		if m.running {
			return m, nil
		}
		p, err := m.form.Params()
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		m.running = true
		return m, cmdSolve(m.solve, p)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m model) updateScenarios(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.scr = screenHome
		return m, nil

	case "enter":
		if m.running {
			return m, nil
		}
		it, ok := m.scenarios.SelectedItem().(scenarioItem)
		if !ok {
			return m, nil
		}
		m.running = true
		_, cmd := startRunAsync(m.workspaceRoot, it.ref.Path, m.deps.Logger, m.deps.Debug)
		return m, cmd
	}

	var cmd tea.Cmd
	m.scenarios, cmd = m.scenarios.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("projectile") + "\n" +
		m.theme.Subtitle.Render("Landing point of a launch, with or without linear drag") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace found (Init Workspace creates one). Solve works without it.")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast) + "\n"
	}

	var body string
	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • q quit")
		body = m.theme.Card.Render(m.menu.View()) + "\n" + help

	case screenSolve:
		form := m.theme.Title.Render("Solve") + "\n\n" + m.form.View(m.theme)
		if m.running {
			form += "\n" + m.theme.Help.Render("solving…")
		}
		body = m.theme.Card.Render(form)
		if m.result != nil {
			body += "\n" + m.theme.Card.Render(renderLanding(m.theme, m.lastParams, *m.result))
		}
		body += "\n" + m.theme.Help.Render("tab/shift+tab move • enter solve • esc back • ctrl+c quit")

	case screenScenarios:
		help := "enter run • esc back"
		if m.running {
			help = "running…"
		}
		body = m.theme.Card.Render(m.scenarios.View()) + "\n" + m.theme.Help.Render(help)

	case screenRunResult:
		body = m.theme.Card.Render(renderRun(m.run, m.runID, m.width-8)) + "\n" +
			m.theme.Help.Render("esc/b back")

	default:
		body = "unknown state"
	}

	return wrap.Render(header + "\n" + workspaceBanner + "\n" + toast + "\n" + body)
}
