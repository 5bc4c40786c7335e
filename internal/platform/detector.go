// Package platform provides platform-specific path detection for the ghostty
// binary, its themes directory, and the user configuration file.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Paths contains the detected platform-specific locations.
type Paths struct {
	// BinaryCandidates are checked in order when locating the ghostty binary.
	BinaryCandidates []string
	// ThemeDirs are checked in order when locating the bundled themes directory.
	ThemeDirs []string
}

// Detect returns platform-specific default paths for ghostty.
func Detect() *Paths {
	switch runtime.GOOS {
	case "darwin":
		return &Paths{
			BinaryCandidates: []string{
				"/Applications/Ghostty.app/Contents/MacOS/ghostty",
				"/opt/homebrew/bin/ghostty",
				"/usr/local/bin/ghostty",
			},
			ThemeDirs: []string{
				"/Applications/Ghostty.app/Contents/Resources/ghostty/themes",
				"/opt/homebrew/share/ghostty/themes",
				"/usr/local/share/ghostty/themes",
			},
		}
	default:
		return &Paths{
			BinaryCandidates: []string{
				"/usr/bin/ghostty",
				"/usr/local/bin/ghostty",
				filepath.Join(os.Getenv("HOME"), ".local", "bin", "ghostty"),
			},
			ThemeDirs: append(
				xdgDataThemeDirs(),
				"/usr/share/ghostty/themes",
				"/usr/local/share/ghostty/themes",
			),
		}
	}
}

// xdgDataThemeDirs expands XDG_DATA_DIRS into ghostty theme directories.
func xdgDataThemeDirs() []string {
	var dirs []string
	for _, dir := range strings.Split(os.Getenv("XDG_DATA_DIRS"), ":") {
		if dir == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, "ghostty", "themes"))
	}
	return dirs
}

// DefaultConfigPath returns the path to the user's ghostty config file.
// Ghostty reads XDG-style paths on every platform, including macOS.
func DefaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ghostty", "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ghostty", "config"), nil
}

// FirstExisting returns the first path in candidates that exists on disk.
func FirstExisting(candidates []string) (string, bool) {
	for _, p := range candidates {
		if pathExists(p) {
			return p, true
		}
	}
	return "", false
}

// pathExists checks if a path exists on the filesystem.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
