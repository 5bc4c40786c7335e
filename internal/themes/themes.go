// Package themes discovers and parses ghostty's bundled theme files.
//
// Theme files use the same key-value syntax as the main config. Only the
// color-related keys are extracted: background, foreground, cursor-color,
// selection-background, and the 16 palette slots.
package themes

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/madeye/ghostty-config/internal/errors"
	"github.com/madeye/ghostty-config/internal/logger"
	"github.com/madeye/ghostty-config/internal/platform"
)

// Theme holds the colors extracted from a theme file.
type Theme struct {
	Name                string   `json:"name"`
	Background          string   `json:"background"`
	Foreground          string   `json:"foreground"`
	Palette             []string `json:"palette"`
	IsDark              bool     `json:"is_dark"`
	CursorColor         string   `json:"cursor_color,omitempty"`
	SelectionBackground string   `json:"selection_background,omitempty"`
}

// Dir returns the themes directory, or false when none exists.
func Dir() (string, bool) {
	paths := platform.Detect()
	for _, candidate := range paths.ThemeDirs {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Load discovers the themes directory and parses every theme in it.
// A missing directory yields an empty list, not an error, since theme
// support is optional.
func Load() ([]Theme, error) {
	dir, ok := Dir()
	if !ok {
		logger.Warn("Could not find ghostty themes directory")
		return nil, nil
	}
	return LoadDir(dir)
}

// LoadDir parses every theme file in dir, sorted case-insensitively by name.
func LoadDir(dir string) ([]Theme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapPath(errors.ErrCodeIO, "failed to read themes directory", dir, err)
	}

	var themes []Theme
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		theme, err := ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Debug("Skipping unreadable theme %s: %v", entry.Name(), err)
			continue
		}
		themes = append(themes, theme)
	}

	sort.Slice(themes, func(i, j int) bool {
		return strings.ToLower(themes[i].Name) < strings.ToLower(themes[j].Name)
	})
	return themes, nil
}

// ParseFile extracts colors from a single theme file.
func ParseFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.WrapPath(errors.ErrCodeIO, "failed to read theme file", path, err)
	}

	theme := Theme{
		Name:       filepath.Base(path),
		Background: "#000000",
		Foreground: "#ffffff",
		Palette:    make([]string, 16),
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "background":
			theme.Background = value
		case "foreground":
			theme.Foreground = value
		case "cursor-color":
			theme.CursorColor = value
		case "selection-background":
			theme.SelectionBackground = value
		case "palette":
			// Palette entries look like "palette = 3=#f9e2af"
			idxStr, color, ok := strings.Cut(value, "=")
			if !ok {
				continue
			}
			idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
			if err == nil && idx >= 0 && idx < 16 {
				theme.Palette[idx] = strings.TrimSpace(color)
			}
		}
	}

	theme.IsDark = IsDark(theme.Background)
	return theme, nil
}

// IsDark reports whether a hex color reads as dark, using the perceived
// luminance of its RGB channels. Malformed colors count as dark so broken
// themes land in the larger (dark) group.
func IsDark(hex string) bool {
	s := strings.TrimPrefix(hex, "#")
	if len(s) < 6 {
		return true
	}

	c, err := colorful.Hex("#" + s[:6])
	if err != nil {
		return true
	}

	luminance := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return luminance < 128.0/255.0
}
