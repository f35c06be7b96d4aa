package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/infra/runstore"
	"github.com/Zcytxcbyz/projectile/internal/infra/workspacefinder"
	"github.com/Zcytxcbyz/projectile/internal/infra/yamlscenario"
	"github.com/Zcytxcbyz/projectile/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	scenarios ports.ScenarioLoader
	store     ports.ArtifactStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return newWorkspaceCtx(root, cfg), nil
}

// loadWorkspaceOrDefaults behaves like loadWorkspace when a workspace is
// found or named, and otherwise returns built-in defaults with no store.
func loadWorkspaceOrDefaults(workspaceFlag string) (*workspaceCtx, error) {
	if strings.TrimSpace(workspaceFlag) != "" {
		return loadWorkspace(workspaceFlag)
	}

	wd, err := os.Getwd()
	if err != nil {
		return &workspaceCtx{cfg: domain.DefaultConfig()}, nil
	}
	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return &workspaceCtx{cfg: domain.DefaultConfig()}, nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return newWorkspaceCtx(root, cfg), nil
}

func newWorkspaceCtx(root string, cfg domain.Config) *workspaceCtx {
	loader := yamlscenario.NewLoader(
		yamlscenario.WithScenariosDir(cfg.Paths.ScenariosDir),
		yamlscenario.WithDefaults(cfg.Defaults),
	)
	store := runstore.NewJSONStore(root, cfg, runstore.WithIndex(true))

	return &workspaceCtx{
		root:      root,
		cfg:       cfg,
		scenarios: loader,
		store:     store,
	}
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `projectile init`): %w", wd, err)
	}
	return root, nil
}

func resolveScenarioPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("scenario is required (use --scenario or -s)")
	}

	// Paths resolve relative to the workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	scenariosDir := filepath.Join(ws.root, ws.cfg.Paths.ScenariosDir)

	if hasYAMLExt(in) {
		p := filepath.Join(scenariosDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	p1 := filepath.Join(scenariosDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(scenariosDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	// Last resort: match the scenario "name" field.
	refs, err := ws.scenarios.ListScenarios(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_scenario",
		Kind: domain.KindNotFound,
		Path: scenariosDir,
		Err:  fmt.Errorf("scenario %q: %w", in, domain.ErrNotFound),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
