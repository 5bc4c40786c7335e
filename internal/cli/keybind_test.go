package cli

import (
	"strings"
	"testing"
)

func TestRunKeybindAdd(t *testing.T) {
	t.Run("appends a keybind entry", func(t *testing.T) {
		_, configPath := setupTest(t)
		writeConfig(t, configPath, "font-size = 16\n")

		if err := runKeybindAdd(keybindAddCmd, []string{"ctrl+shift+t", "new_tab"}); err != nil {
			t.Fatalf("runKeybindAdd failed: %v", err)
		}

		if got := readConfig(t, configPath); !strings.Contains(got, "keybind = ctrl+shift+t=new_tab") {
			t.Errorf("keybind not written, got %q", got)
		}
	})

	t.Run("multiple keybinds accumulate", func(t *testing.T) {
		_, configPath := setupTest(t)

		if err := runKeybindAdd(keybindAddCmd, []string{"ctrl+1", "goto_tab:1"}); err != nil {
			t.Fatalf("runKeybindAdd failed: %v", err)
		}
		if err := runKeybindAdd(keybindAddCmd, []string{"ctrl+2", "goto_tab:2"}); err != nil {
			t.Fatalf("runKeybindAdd failed: %v", err)
		}

		got := readConfig(t, configPath)
		if !strings.Contains(got, "ctrl+1=goto_tab:1") || !strings.Contains(got, "ctrl+2=goto_tab:2") {
			t.Errorf("expected both keybinds, got %q", got)
		}
	})

	t.Run("empty trigger is an error", func(t *testing.T) {
		_, _ = setupTest(t)

		if err := runKeybindAdd(keybindAddCmd, []string{"  ", "new_tab"}); err == nil {
			t.Error("expected error for empty trigger")
		}
	})
}

func TestRunKeybindRm(t *testing.T) {
	t.Run("removes the matching entry", func(t *testing.T) {
		_, configPath := setupTest(t)
		writeConfig(t, configPath, "keybind = ctrl+1=goto_tab:1\nkeybind = ctrl+2=goto_tab:2\n")

		if err := runKeybindRm(keybindRmCmd, []string{"ctrl+1", "goto_tab:1"}); err != nil {
			t.Fatalf("runKeybindRm failed: %v", err)
		}

		got := readConfig(t, configPath)
		if strings.Contains(got, "ctrl+1") {
			t.Errorf("keybind not removed, got %q", got)
		}
		if !strings.Contains(got, "ctrl+2=goto_tab:2") {
			t.Errorf("other keybind should survive, got %q", got)
		}
	})

	t.Run("no match leaves the file untouched", func(t *testing.T) {
		_, configPath := setupTest(t)
		writeConfig(t, configPath, "keybind = ctrl+1=goto_tab:1\n")

		if err := runKeybindRm(keybindRmCmd, []string{"ctrl+9", "nothing"}); err != nil {
			t.Fatalf("runKeybindRm failed: %v", err)
		}

		if got := readConfig(t, configPath); !strings.Contains(got, "ctrl+1=goto_tab:1") {
			t.Errorf("file should be untouched, got %q", got)
		}
	})
}

func TestRunKeybindList(t *testing.T) {
	t.Run("lists custom keybinds", func(t *testing.T) {
		_, configPath := setupTest(t)
		writeConfig(t, configPath, "keybind = ctrl+1=goto_tab:1\n")

		out := captureStdout(func() {
			if err := runKeybindList(keybindListCmd, nil); err != nil {
				t.Errorf("runKeybindList failed: %v", err)
			}
		})

		if !strings.Contains(out, "ctrl+1") || !strings.Contains(out, "goto_tab:1") {
			t.Errorf("expected custom keybind in output, got %q", out)
		}
	})

	t.Run("defaults flag includes built-in keybinds", func(t *testing.T) {
		_, _ = setupTest(t)
		keybindShowDefaults = true
		defer func() { keybindShowDefaults = false }()

		out := captureStdout(func() {
			if err := runKeybindList(keybindListCmd, nil); err != nil {
				t.Errorf("runKeybindList failed: %v", err)
			}
		})

		if !strings.Contains(out, "super+t") || !strings.Contains(out, "new_tab") {
			t.Errorf("expected default keybinds in output, got %q", out)
		}
	})
}
