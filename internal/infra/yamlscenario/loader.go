package yamlscenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	scenariosDir string
	defaults     domain.DefaultsConfig
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		scenariosDir: "scenarios",
		defaults:     domain.DefaultConfig().Defaults,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithScenariosDir(dir string) Option {
	return func(l *Loader) { l.scenariosDir = dir }
}

// WithDefaults sets the workspace-level fallbacks for mass, gravity and drag.
func WithDefaults(d domain.DefaultsConfig) Option {
	return func(l *Loader) { l.defaults = d }
}

var _ ports.ScenarioLoader = (*Loader)(nil)

func (l *Loader) LoadScenario(path string) (domain.Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, &domain.OpError{
			Op:   "yamlscenario.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var ys yamlScenario
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.Scenario{}, &domain.OpError{
			Op:   "yamlscenario.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return l.mapAndValidate(path, ys)
}

func (l *Loader) ListScenarios(root string) ([]domain.ScenarioRef, error) {
	dir := filepath.Join(root, l.scenariosDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlscenario.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ScenarioRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readScenarioName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.ScenarioRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readScenarioName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlScenario struct {
	Name     string       `yaml:"name"`
	Defaults yamlDefaults `yaml:"defaults"`
	Launches []yamlLaunch `yaml:"launches"`
}

type yamlDefaults struct {
	Mass    *float64 `yaml:"mass"`
	Gravity *float64 `yaml:"gravity"`
	Drag    *float64 `yaml:"drag"`
}

type yamlLaunch struct {
	Name    string   `yaml:"name"`
	V0      *float64 `yaml:"v0"`
	Angle   *float64 `yaml:"angle"`
	Mass    *float64 `yaml:"mass"`
	Gravity *float64 `yaml:"gravity"`
	Drag    *float64 `yaml:"drag"`

	Expect yamlExpect `yaml:"expect"`
}

type yamlExpect struct {
	Converged *bool                         `yaml:"converged"`
	JSONPath  map[string]yamlJSONPathExpect `yaml:"jsonpath"`
}

type yamlJSONPathExpect struct {
	Exists bool     `yaml:"exists"`
	Eq     *string  `yaml:"eq"`
	Gt     *float64 `yaml:"gt"`
	Lt     *float64 `yaml:"lt"`
}

func (l *Loader) mapAndValidate(path string, ys yamlScenario) (domain.Scenario, error) {
	if strings.TrimSpace(ys.Name) == "" {
		return domain.Scenario{}, invalidField(path, "name", "scenario name is required")
	}
	if len(ys.Launches) == 0 {
		return domain.Scenario{}, invalidField(path, "launches", "at least one launch is required")
	}

	// launch value < scenario defaults < workspace defaults
	mass := pick(ys.Defaults.Mass, l.defaults.Mass)
	gravity := pick(ys.Defaults.Gravity, l.defaults.Gravity)
	drag := pick(ys.Defaults.Drag, l.defaults.Drag)

	sc := domain.Scenario{
		Name:     ys.Name,
		Launches: make([]domain.LaunchSpec, 0, len(ys.Launches)),
	}

	seen := map[string]bool{}
	for i, yl := range ys.Launches {
		fieldPrefix := fmt.Sprintf("launches[%d]", i)

		name := strings.TrimSpace(yl.Name)
		if name == "" {
			return domain.Scenario{}, invalidField(path, fieldPrefix+".name", "launch name is required")
		}
		if seen[name] {
			return domain.Scenario{}, invalidField(path, fieldPrefix+".name", fmt.Sprintf("duplicate launch name %q", name))
		}
		seen[name] = true

		if yl.V0 == nil {
			return domain.Scenario{}, invalidField(path, fieldPrefix+".v0", "initial velocity is required")
		}
		if yl.Angle == nil {
			return domain.Scenario{}, invalidField(path, fieldPrefix+".angle", "launch angle is required")
		}

		sc.Launches = append(sc.Launches, domain.LaunchSpec{
			Name: name,
			Params: domain.LaunchParameters{
				InitialVelocity:    *yl.V0,
				LaunchAngleDegrees: *yl.Angle,
				Mass:               pick(yl.Mass, mass),
				Gravity:            pick(yl.Gravity, gravity),
				DragCoefficient:    pick(yl.Drag, drag),
			},
			Expect: domain.ExpectSpec{
				Converged: yl.Expect.Converged,
				JSONPath:  mapJSONPath(yl.Expect.JSONPath),
			},
		})
	}

	return sc, nil
}

func mapJSONPath(in map[string]yamlJSONPathExpect) map[string]domain.JSONPathExpectation {
	out := make(map[string]domain.JSONPathExpectation, len(in))
	for k, v := range in {
		out[k] = domain.JSONPathExpectation{
			Exists: v.Exists,
			Eq:     v.Eq,
			Gt:     v.Gt,
			Lt:     v.Lt,
		}
	}
	return out
}

func pick(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlscenario.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
