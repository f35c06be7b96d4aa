package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/spf13/viper"
)

// ConfigFileName is the marker file that identifies a workspace root.
const ConfigFileName = "projectile.yaml"

// EnvPrefix scopes environment overrides, e.g. PROJECTILE_DEFAULTS_GRAVITY.
const EnvPrefix = "PROJECTILE"

// LoadConfig reads projectile.yaml from the workspace root, applies
// PROJECTILE_* environment overrides and fills the rest from DefaultConfig.
func LoadConfig(root string) (domain.Config, error) {
	const op = "workspacefinder.loadconfig"

	path := filepath.Join(root, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   op,
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("unmarshal config: %w", err),
		}
	}

	cfg := fc.toDomain()
	if err := Validate(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	d := domain.DefaultConfig()
	defaults := []struct {
		key string
		val any
	}{
		{"projectile.defaults.mass", d.Defaults.Mass},
		{"projectile.defaults.gravity", d.Defaults.Gravity},
		{"projectile.defaults.drag", d.Defaults.Drag},
		{"projectile.output.format", d.Output.Format},
		{"projectile.paths.scenarios_dir", d.Paths.ScenariosDir},
		{"projectile.paths.runs_dir", d.Paths.RunsDir},
		{"projectile.server.addr", d.Server.Addr},
	}
	for _, kv := range defaults {
		v.SetDefault(kv.key, kv.val)
		_ = v.BindEnv(kv.key, EnvName(kv.key))
	}

	return v
}

// EnvName maps a config key to its override variable:
// projectile.defaults.mass -> PROJECTILE_DEFAULTS_MASS.
func EnvName(key string) string {
	key = strings.TrimPrefix(key, "projectile.")
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Validate reports every out-of-range setting at once.
func Validate(cfg domain.Config) error {
	var errs []string

	if !(cfg.Defaults.Mass > 0) {
		errs = append(errs, fmt.Sprintf("defaults.mass must be > 0, got %g", cfg.Defaults.Mass))
	}
	if !(cfg.Defaults.Gravity > 0) {
		errs = append(errs, fmt.Sprintf("defaults.gravity must be > 0, got %g", cfg.Defaults.Gravity))
	}
	if !(cfg.Defaults.Drag >= 0) {
		errs = append(errs, fmt.Sprintf("defaults.drag must be >= 0, got %g", cfg.Defaults.Drag))
	}
	switch cfg.Output.Format {
	case "pretty", "json":
	default:
		errs = append(errs, fmt.Sprintf("output.format must be pretty or json, got %q", cfg.Output.Format))
	}
	if strings.TrimSpace(cfg.Paths.ScenariosDir) == "" {
		errs = append(errs, "paths.scenarios_dir is required")
	}
	if strings.TrimSpace(cfg.Paths.RunsDir) == "" {
		errs = append(errs, "paths.runs_dir is required")
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		errs = append(errs, "server.addr is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

type fileConfig struct {
	Projectile struct {
		Defaults struct {
			Mass    float64 `mapstructure:"mass"`
			Gravity float64 `mapstructure:"gravity"`
			Drag    float64 `mapstructure:"drag"`
		} `mapstructure:"defaults"`

		Output struct {
			Format string `mapstructure:"format"`
		} `mapstructure:"output"`

		Paths struct {
			ScenariosDir string `mapstructure:"scenarios_dir"`
			RunsDir      string `mapstructure:"runs_dir"`
		} `mapstructure:"paths"`

		Server struct {
			Addr string `mapstructure:"addr"`
		} `mapstructure:"server"`
	} `mapstructure:"projectile"`
}

func (fc fileConfig) toDomain() domain.Config {
	p := fc.Projectile
	return domain.Config{
		Defaults: domain.DefaultsConfig{
			Mass:    p.Defaults.Mass,
			Gravity: p.Defaults.Gravity,
			Drag:    p.Defaults.Drag,
		},
		Output: domain.OutputConfig{Format: strings.ToLower(strings.TrimSpace(p.Output.Format))},
		Paths: domain.PathsConfig{
			ScenariosDir: p.Paths.ScenariosDir,
			RunsDir:      p.Paths.RunsDir,
		},
		Server: domain.ServerConfig{Addr: p.Server.Addr},
	}
}

// IsMissingConfig reports whether err came from an absent projectile.yaml.
func IsMissingConfig(err error) bool {
	return domain.IsKind(err, domain.KindNotFound) && errors.Is(err, os.ErrNotExist)
}
