package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/madeye/ghostty-config/internal/app"
	"github.com/madeye/ghostty-config/internal/document"
	"github.com/madeye/ghostty-config/internal/ghostty"
	"github.com/madeye/ghostty-config/internal/schema"
)

func newDoctorApp(t *testing.T, contents string) *app.App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config")
	if contents != "" {
		writeConfig(t, path, contents)
	}
	doc, err := document.Read(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	a := app.New(schema.Parse(testSchemaText), doc)
	a.GhosttyPath = "/usr/bin/ghostty"
	return a
}

func hasCheck(results []CheckResult, status, substr string) bool {
	for _, r := range results {
		if r.Status == status && strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}

func TestCheckInstallation(t *testing.T) {
	a := newDoctorApp(t, "")
	client := ghostty.NewClient("/usr/bin/ghostty", newGhosttyMock())

	results := checkInstallation(a, client)

	if !hasCheck(results, "success", "/usr/bin/ghostty") {
		t.Errorf("expected binary check, got %v", results)
	}
	if !hasCheck(results, "success", "Ghostty 1.2.0") {
		t.Errorf("expected version check, got %v", results)
	}
	if !hasCheck(results, "success", "options") {
		t.Errorf("expected schema check, got %v", results)
	}
}

func TestCheckInstallationEmptySchema(t *testing.T) {
	a := app.New(schema.Parse(""), document.New(filepath.Join(t.TempDir(), "config")))
	a.GhosttyPath = "/usr/bin/ghostty"
	client := ghostty.NewClient("/usr/bin/ghostty", newGhosttyMock())

	results := checkInstallation(a, client)

	if !hasCheck(results, "error", "no options") {
		t.Errorf("expected schema error, got %v", results)
	}
}

func TestCheckConfigFile(t *testing.T) {
	t.Run("clean config passes", func(t *testing.T) {
		a := newDoctorApp(t, "font-size = 16\ntheme = nord\n")

		results := checkConfigFile(a)

		if !hasCheck(results, "success", "No issues") {
			t.Errorf("expected clean report, got %v", results)
		}
	})

	t.Run("missing file is a warning", func(t *testing.T) {
		a := newDoctorApp(t, "")

		results := checkConfigFile(a)

		if !hasCheck(results, "warning", "does not exist") {
			t.Errorf("expected missing-file warning, got %v", results)
		}
	})

	t.Run("unknown key is a warning", func(t *testing.T) {
		a := newDoctorApp(t, "font-sizee = 16\n")

		results := checkConfigFile(a)

		if !hasCheck(results, "warning", "font-sizee") {
			t.Errorf("expected unknown-key warning, got %v", results)
		}
	})

	t.Run("repeated non-repeatable key is a warning", func(t *testing.T) {
		a := newDoctorApp(t, "font-size = 16\nfont-size = 18\n")

		results := checkConfigFile(a)

		if !hasCheck(results, "warning", "appears 2 times") {
			t.Errorf("expected duplicate warning, got %v", results)
		}
	})

	t.Run("repeated keybind is fine", func(t *testing.T) {
		a := newDoctorApp(t, "keybind = ctrl+1=goto_tab:1\nkeybind = ctrl+2=goto_tab:2\n")

		results := checkConfigFile(a)

		if hasCheck(results, "warning", "appears") {
			t.Errorf("keybind repetition should not warn, got %v", results)
		}
	})
}
