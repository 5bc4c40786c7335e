package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings represents the tool's own configuration
type Settings struct {
	// GhosttyPath overrides ghostty binary auto-detection
	GhosttyPath string `yaml:"ghostty_path,omitempty"`
	// ConfigPath overrides the ghostty config file location
	ConfigPath string `yaml:"config_path,omitempty"`
	// ThemeDir overrides the themes directory location
	ThemeDir string `yaml:"theme_dir,omitempty"`
	// Editor overrides $EDITOR for the edit command
	Editor string `yaml:"editor,omitempty"`
}

// configDir is the default config directory
const configDir = ".config/ghostty-config"
const configFile = "config.yaml"

// New creates Settings with default (empty, auto-detect) values
func New() *Settings {
	return &Settings{}
}

// Dir returns the config directory path
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// Path returns the config file path
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the settings from disk
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	// If config doesn't exist, return default settings
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return cfg, nil
}

// Save writes the settings to disk
func (s *Settings) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
