package tui

import "github.com/Zcytxcbyz/projectile/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type scenariosLoadedMsg struct {
	root string
	refs []domain.ScenarioRef
	err  error
}

type solveDoneMsg struct {
	params domain.LaunchParameters
	result domain.LandingResult
	err    error
}

type runnerDoneMsg struct {
	run domain.RunResult
	id  string
	err error
}
