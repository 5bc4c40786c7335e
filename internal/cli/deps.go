package cli

import (
	"github.com/madeye/ghostty-config/internal/config"
	"github.com/madeye/ghostty-config/internal/executor"
	"github.com/madeye/ghostty-config/internal/input"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	Settings SettingsLoader
	Executor executor.CommandExecutor
	Stdin    input.Reader
}

// SettingsLoader handles tool settings loading and saving
type SettingsLoader interface {
	Load() (*config.Settings, error)
	Save(cfg *config.Settings) error
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	Settings: &realSettingsLoader{},
	Executor: executor.NewSystemExecutor(),
	Stdin:    input.NewStdinReader(),
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

type realSettingsLoader struct{}

func (r *realSettingsLoader) Load() (*config.Settings, error) {
	return config.Load()
}

func (r *realSettingsLoader) Save(cfg *config.Settings) error {
	return cfg.Save()
}
