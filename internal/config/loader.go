package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Loader defines the interface for loading project configuration.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if the file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
// Missing fields are filled in from the defaults.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	mergeConfig(&cfg, DefaultConfig())
	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if the file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	return ValidateConfig(config)
}

// mergeConfig merges missing fields from defaults into cfg. The
// tri-state booleans need no merging: nil already means unset.
func mergeConfig(cfg, defaults *Config) {
	if cfg.Site.Name == "" {
		cfg.Site.Name = defaults.Site.Name
	}

	if cfg.Paths.Templates == "" {
		cfg.Paths.Templates = defaults.Paths.Templates
	}
	if cfg.Paths.Data == "" {
		cfg.Paths.Data = defaults.Paths.Data
	}
	if cfg.Paths.Output == "" {
		cfg.Paths.Output = defaults.Paths.Output
	}
	if cfg.Paths.Registry == "" {
		cfg.Paths.Registry = defaults.Paths.Registry
	}
	if cfg.Paths.Schema == "" {
		cfg.Paths.Schema = defaults.Paths.Schema
	}

	if cfg.Render.PageGlob == "" {
		cfg.Render.PageGlob = defaults.Render.PageGlob
	}
}

// ResolvePaths rebases every relative path in the configuration onto the
// directory containing the configuration file, so a build works no
// matter where the CLI is invoked from.
func ResolvePaths(cfg *Config, configPath string) {
	base := filepath.Dir(configPath)
	rebase := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	cfg.Paths.Templates = rebase(cfg.Paths.Templates)
	cfg.Paths.Data = rebase(cfg.Paths.Data)
	cfg.Paths.Output = rebase(cfg.Paths.Output)
	cfg.Paths.Registry = rebase(cfg.Paths.Registry)
	cfg.Paths.Schema = rebase(cfg.Paths.Schema)
}
