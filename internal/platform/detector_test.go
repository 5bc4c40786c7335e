package platform

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	paths := Detect()

	if len(paths.BinaryCandidates) == 0 {
		t.Fatal("expected at least one binary candidate")
	}
	if len(paths.ThemeDirs) == 0 {
		t.Fatal("expected at least one theme directory")
	}

	for _, p := range paths.BinaryCandidates {
		if !strings.HasSuffix(p, "ghostty") {
			t.Errorf("binary candidate %q should end in ghostty", p)
		}
	}
	for _, d := range paths.ThemeDirs {
		if !strings.HasSuffix(d, "themes") {
			t.Errorf("theme dir %q should end in themes", d)
		}
	}

	if runtime.GOOS == "darwin" {
		if paths.BinaryCandidates[0] != "/Applications/Ghostty.app/Contents/MacOS/ghostty" {
			t.Errorf("expected app bundle binary first on darwin, got %q", paths.BinaryCandidates[0])
		}
	}
}

func TestXDGDataThemeDirs(t *testing.T) {
	t.Run("empty env", func(t *testing.T) {
		t.Setenv("XDG_DATA_DIRS", "")
		if dirs := xdgDataThemeDirs(); len(dirs) != 0 {
			t.Errorf("expected no dirs for empty XDG_DATA_DIRS, got %v", dirs)
		}
	})

	t.Run("multiple entries", func(t *testing.T) {
		t.Setenv("XDG_DATA_DIRS", "/usr/share:/opt/share")
		dirs := xdgDataThemeDirs()
		if len(dirs) != 2 {
			t.Fatalf("expected 2 dirs, got %v", dirs)
		}
		if dirs[0] != filepath.Join("/usr/share", "ghostty", "themes") {
			t.Errorf("unexpected first dir %q", dirs[0])
		}
	})

	t.Run("skips empty segments", func(t *testing.T) {
		t.Setenv("XDG_DATA_DIRS", "/usr/share::")
		if dirs := xdgDataThemeDirs(); len(dirs) != 1 {
			t.Errorf("expected 1 dir, got %v", dirs)
		}
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		path, err := DefaultConfigPath()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join("/tmp/xdg", "ghostty", "config")
		if path != want {
			t.Errorf("expected %q, got %q", want, path)
		}
	})

	t.Run("falls back to home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		path, err := DefaultConfigPath()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(path, filepath.Join(".config", "ghostty", "config")) {
			t.Errorf("expected path under ~/.config/ghostty, got %q", path)
		}
	})
}

func TestFirstExisting(t *testing.T) {
	dir := t.TempDir()

	t.Run("finds existing path", func(t *testing.T) {
		got, ok := FirstExisting([]string{"/nonexistent-xyz", dir})
		if !ok {
			t.Fatal("expected a match")
		}
		if got != dir {
			t.Errorf("expected %q, got %q", dir, got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, ok := FirstExisting([]string{"/nonexistent-xyz"}); ok {
			t.Error("expected no match")
		}
	})

	t.Run("empty candidates", func(t *testing.T) {
		if _, ok := FirstExisting(nil); ok {
			t.Error("expected no match for nil candidates")
		}
	})
}

func TestPlatform(t *testing.T) {
	p := Platform()
	if !strings.Contains(p, "/") {
		t.Errorf("expected os/arch format, got %q", p)
	}
	if !strings.HasPrefix(p, runtime.GOOS) {
		t.Errorf("expected platform to start with %s, got %q", runtime.GOOS, p)
	}
}
