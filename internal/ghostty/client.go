// Package ghostty wraps the ghostty binary's CLI surface: locating the
// binary and running its +subcommands (show-config, list-keybinds,
// list-actions, list-fonts, validate-config).
package ghostty

import (
	"os"

	"github.com/madeye/ghostty-config/internal/errors"
	"github.com/madeye/ghostty-config/internal/executor"
	"github.com/madeye/ghostty-config/internal/logger"
	"github.com/madeye/ghostty-config/internal/platform"
)

// Client runs ghostty CLI commands through an executor.
type Client struct {
	// Path is the resolved location of the ghostty binary.
	Path string

	exec executor.CommandExecutor
}

// NewClient creates a client for the ghostty binary at path.
func NewClient(path string, exec executor.CommandExecutor) *Client {
	return &Client{Path: path, exec: exec}
}

// Find locates the ghostty binary, checking well-known install locations
// before falling back to PATH lookup.
func Find(exec executor.CommandExecutor) (string, error) {
	paths := platform.Detect()
	for _, candidate := range paths.BinaryCandidates {
		if _, err := os.Stat(candidate); err == nil {
			logger.Debug("Found ghostty at %s", candidate)
			return candidate, nil
		}
	}

	if path, err := exec.LookPath("ghostty"); err == nil && path != "" {
		logger.Debug("Found ghostty on PATH at %s", path)
		return path, nil
	}

	return "", errors.ErrGhosttyNotFound
}

// Run executes a ghostty command and returns its output.
// Ghostty writes some subcommand output to stderr even on success, so
// stderr is returned as output when stdout is empty.
func (c *Client) Run(args ...string) (string, error) {
	stdout, stderr, err := c.exec.Execute(c.Path, args...)

	if err != nil && len(stdout) == 0 {
		if len(stderr) > 0 {
			return string(stderr), nil
		}
		return "", errors.Wrap(errors.ErrCodeExec, "ghostty command failed", err)
	}

	if len(stdout) == 0 && len(stderr) > 0 {
		return string(stderr), nil
	}

	return string(stdout), nil
}

// ShowConfig returns the full default config with documentation comments,
// the raw input for schema extraction.
func (c *Client) ShowConfig() (string, error) {
	return c.Run("+show-config", "--default", "--docs")
}

// Version returns the output of ghostty +version.
func (c *Client) Version() (string, error) {
	return c.Run("+version")
}
