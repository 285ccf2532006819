package cmd

import (
	"github.com/anthropics/codenav/internal/config"
)

// loadConfig resolves the effective configuration for a command invocation:
// the file at --config if given, else the first .codenav/config.yaml found
// by walking up from the working directory, else built-in defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load(".")
}
