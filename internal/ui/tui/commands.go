package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/infra/runstore"
	"github.com/Zcytxcbyz/projectile/internal/infra/workspacefinder"
	"github.com/Zcytxcbyz/projectile/internal/infra/yamlscenario"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
)

const runTimeout = time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadScenarios(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return scenariosLoadedMsg{root: root, err: err}
		}

		loader := yamlscenario.NewLoader(
			yamlscenario.WithScenariosDir(cfg.Paths.ScenariosDir),
		)

		refs, err := loader.ListScenarios(root)
		return scenariosLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdSolve(uc *usecase.SolveLanding, p domain.LaunchParameters) tea.Cmd {
	return func() tea.Msg {
		r, _, err := uc.Execute(context.Background(), p)
		return solveDoneMsg{params: p, result: r, err: err}
	}
}

func listenRunner(ch <-chan runnerDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return runnerDoneMsg{err: errors.New("runner channel closed")}
		}
		return msg
	}
}

func startRunAsync(workspaceRoot, scenarioPath string, log *slog.Logger, debug bool) (chan runnerDoneMsg, tea.Cmd) {
	ch := make(chan runnerDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("run.start",
			"workspace", workspaceRoot,
			"scenario_path", scenarioPath,
			"debug", debug,
		)

		cfg, err := workspacefinder.LoadConfig(workspaceRoot)
		if err != nil {
			log.Error("run.load_config.failed", "err", err)
			ch <- runnerDoneMsg{err: err}
			return
		}

		loader := yamlscenario.NewLoader(
			yamlscenario.WithScenariosDir(cfg.Paths.ScenariosDir),
			yamlscenario.WithDefaults(cfg.Defaults),
		)
		store := runstore.NewJSONStore(workspaceRoot, cfg, runstore.WithIndex(true))
		solve := usecase.NewSolveLanding(usecase.WithLogger(log))

		uc := usecase.NewRunScenario(loader, solve, store)

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		run, id, execErr := uc.Execute(ctx, scenarioPath)

		if execErr != nil {
			log.Error("run.failed", "err", execErr, "saved_id", id)
		} else {
			log.Info("run.ok", "saved_id", id)
		}

		for _, sr := range run.Results {
			if sr.Error != nil {
				log.Warn("launch.error",
					"name", sr.Name,
					"kind", string(sr.Error.Kind),
					"message", sr.Error.Message,
				)
			} else if debug {
				log.Debug("launch.ok",
					"name", sr.Name,
					"distance", sr.Result.Distance,
					"flight_time", sr.Result.FlightTime,
					"stop", string(sr.Result.Stop),
				)
			}
		}

		ch <- runnerDoneMsg{run: run, id: id, err: execErr}
	}()

	return ch, listenRunner(ch)
}
