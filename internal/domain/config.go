package domain

// Config represents the workspace configuration loaded from projectile.yaml.
type Config struct {
	Defaults DefaultsConfig
	Output   OutputConfig
	Paths    PathsConfig
	Server   ServerConfig
}

// DefaultsConfig fills launch fields a caller leaves out.
type DefaultsConfig struct {
	Mass    float64
	Gravity float64
	Drag    float64
}

type OutputConfig struct {
	Format string
}

type PathsConfig struct {
	ScenariosDir string
	RunsDir      string
}

type ServerConfig struct {
	Addr string
}

// DefaultConfig provides sane defaults if projectile.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Mass:    1,
			Gravity: 9.8,
			Drag:    0,
		},
		Output: OutputConfig{Format: "pretty"},
		Paths: PathsConfig{
			ScenariosDir: "scenarios",
			RunsDir:      "runs",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}
