// Package config loads codenav's configuration: PageRank parameters, hub
// thresholds, and resolver extension lists, falling back to defaults when
// no config file is present.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the codenav configuration file.
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the codenav configuration directory.
const ConfigDirName = ".codenav"

// Config holds all codenav configuration.
type Config struct {
	PageRank PageRankSettings `yaml:"pagerank"`
	Hub      HubSettings      `yaml:"hub"`
	Resolver ResolverSettings `yaml:"resolver"`
}

// PageRankSettings configures the power-iteration defaults passed into
// pagerank.Config.
type PageRankSettings struct {
	Damping       float64 `yaml:"damping"`
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
}

// HubSettings configures hub.FindHubs' default threshold.
type HubSettings struct {
	DefaultThreshold int `yaml:"default_threshold"`
}

// ResolverSettings configures resolver.New's extension probe order.
type ResolverSettings struct {
	Extensions []string `yaml:"extensions"`
}

// ErrConfigNotFound is returned when no config directory can be located.
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .codenav/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking
// up the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path, merges it with
// defaults, and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .codenav directory by walking up from
// startDir.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .codenav directory if it doesn't exist.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return configDir, nil
}

// Validate checks that config values are within the ranges the pagerank,
// hub, and resolver packages expect.
func Validate(cfg *Config) error {
	if cfg.PageRank.Damping <= 0 || cfg.PageRank.Damping >= 1 {
		return fmt.Errorf("%w: pagerank.damping must be in (0,1), got %f",
			ErrInvalidConfig, cfg.PageRank.Damping)
	}
	if cfg.PageRank.MaxIterations < 1 {
		return fmt.Errorf("%w: pagerank.max_iterations must be >= 1, got %d",
			ErrInvalidConfig, cfg.PageRank.MaxIterations)
	}
	if cfg.PageRank.Tolerance <= 0 {
		return fmt.Errorf("%w: pagerank.tolerance must be > 0, got %f",
			ErrInvalidConfig, cfg.PageRank.Tolerance)
	}
	if cfg.Hub.DefaultThreshold < 0 {
		return fmt.Errorf("%w: hub.default_threshold must be non-negative, got %d",
			ErrInvalidConfig, cfg.Hub.DefaultThreshold)
	}
	for _, ext := range cfg.Resolver.Extensions {
		if len(ext) == 0 || ext[0] != '.' {
			return fmt.Errorf("%w: resolver.extensions entries must start with '.', got %q",
				ErrInvalidConfig, ext)
		}
	}

	return nil
}

// SaveDefault writes the default configuration to .codenav/config.yaml in
// workDir.
func SaveDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	header := "# codenav configuration\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}
