package themes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsDark(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want bool
	}{
		{"black", "#000000", true},
		{"white", "#ffffff", false},
		{"dark blue", "#1e1e2e", true},
		{"light gray", "#f0f0f0", false},
		{"without hash dark", "000000", true},
		{"without hash light", "ffffff", false},
		{"short hex defaults to dark", "#abc", true},
		{"garbage defaults to dark", "#zzzzzz", true},
		{"empty defaults to dark", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDark(tt.hex); got != tt.want {
				t.Errorf("IsDark(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("basic theme", func(t *testing.T) {
		path := writeTheme(t, dir, "catppuccin-mocha",
			"background = #1e1e2e\nforeground = #cdd6f4\npalette = 0=#45475a\npalette = 1=#f38ba8\n")

		theme, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile failed: %v", err)
		}
		if theme.Name != "catppuccin-mocha" {
			t.Errorf("unexpected name %q", theme.Name)
		}
		if theme.Background != "#1e1e2e" || theme.Foreground != "#cdd6f4" {
			t.Errorf("unexpected colors %+v", theme)
		}
		if !theme.IsDark {
			t.Error("catppuccin-mocha should be dark")
		}
		if theme.Palette[0] != "#45475a" || theme.Palette[1] != "#f38ba8" {
			t.Errorf("unexpected palette %v", theme.Palette[:2])
		}
	})

	t.Run("cursor and selection colors", func(t *testing.T) {
		path := writeTheme(t, dir, "light-theme",
			"background = #ffffff\nforeground = #000000\ncursor-color = #ff0000\nselection-background = #aaaaaa\n")

		theme, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile failed: %v", err)
		}
		if theme.IsDark {
			t.Error("white background should not be dark")
		}
		if theme.CursorColor != "#ff0000" {
			t.Errorf("unexpected cursor color %q", theme.CursorColor)
		}
		if theme.SelectionBackground != "#aaaaaa" {
			t.Errorf("unexpected selection background %q", theme.SelectionBackground)
		}
	})

	t.Run("comments are skipped", func(t *testing.T) {
		path := writeTheme(t, dir, "commented",
			"# a comment\nbackground = #000000\n# another\nforeground = #ffffff\n")

		theme, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile failed: %v", err)
		}
		if theme.Background != "#000000" || theme.Foreground != "#ffffff" {
			t.Errorf("unexpected colors %+v", theme)
		}
	})

	t.Run("defaults when keys missing", func(t *testing.T) {
		path := writeTheme(t, dir, "empty", "")

		theme, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile failed: %v", err)
		}
		if theme.Background != "#000000" {
			t.Errorf("expected default background, got %q", theme.Background)
		}
		if theme.Foreground != "#ffffff" {
			t.Errorf("expected default foreground, got %q", theme.Foreground)
		}
		if len(theme.Palette) != 16 {
			t.Errorf("expected 16 palette slots, got %d", len(theme.Palette))
		}
	})

	t.Run("out of range palette index ignored", func(t *testing.T) {
		path := writeTheme(t, dir, "bad-palette",
			"palette = 16=#ffffff\npalette = -1=#ffffff\npalette = x=#ffffff\n")

		theme, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile failed: %v", err)
		}
		for i, c := range theme.Palette {
			if c != "" {
				t.Errorf("palette[%d] should be empty, got %q", i, c)
			}
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ParseFile(filepath.Join(dir, "nope")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestLoadDir(t *testing.T) {
	t.Run("sorted case-insensitively", func(t *testing.T) {
		dir := t.TempDir()
		writeTheme(t, dir, "Zenburn", "background = #3f3f3f\n")
		writeTheme(t, dir, "ayu", "background = #0f1419\n")
		writeTheme(t, dir, "Nord", "background = #2e3440\n")

		themes, err := LoadDir(dir)
		if err != nil {
			t.Fatalf("LoadDir failed: %v", err)
		}
		if len(themes) != 3 {
			t.Fatalf("expected 3 themes, got %d", len(themes))
		}
		if themes[0].Name != "ayu" || themes[1].Name != "Nord" || themes[2].Name != "Zenburn" {
			t.Errorf("themes not sorted: %v", []string{themes[0].Name, themes[1].Name, themes[2].Name})
		}
	})

	t.Run("subdirectories are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeTheme(t, dir, "solo", "background = #000000\n")
		if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
			t.Fatal(err)
		}

		themes, err := LoadDir(dir)
		if err != nil {
			t.Fatalf("LoadDir failed: %v", err)
		}
		if len(themes) != 1 {
			t.Errorf("expected 1 theme, got %d", len(themes))
		}
	})

	t.Run("missing directory errors", func(t *testing.T) {
		if _, err := LoadDir("/nonexistent-themes-dir-xyz"); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
