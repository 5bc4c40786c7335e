package cli

import (
	"fmt"
	"os"

	"github.com/madeye/ghostty-config/internal/app"
	"github.com/madeye/ghostty-config/internal/config"
	"github.com/madeye/ghostty-config/internal/document"
	"github.com/madeye/ghostty-config/internal/ghostty"
	"github.com/madeye/ghostty-config/internal/logger"
	"github.com/madeye/ghostty-config/internal/output"
	"github.com/madeye/ghostty-config/internal/platform"
	"github.com/madeye/ghostty-config/internal/schema"
	"github.com/madeye/ghostty-config/internal/themes"
)

// loadApp builds the editing state: resolves the ghostty binary, extracts
// the schema from it, and reads the user's config file. Catalog data
// (themes, fonts, actions, default keybinds) is loaded only when asked for
// since each piece costs a ghostty invocation.
func loadApp(withCatalog bool) (*app.App, *ghostty.Client, error) {
	settings, err := deps.Settings.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	ghosttyPath := settings.GhosttyPath
	if ghosttyPath == "" {
		ghosttyPath, err = ghostty.Find(deps.Executor)
		if err != nil {
			return nil, nil, err
		}
	}
	client := ghostty.NewClient(ghosttyPath, deps.Executor)

	raw, err := client.ShowConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config schema from ghostty: %w", err)
	}
	sch := schema.Parse(raw)
	logger.Info("Discovered %d config options", len(sch.Options))

	configPath := settings.ConfigPath
	if configPath == "" {
		configPath, err = platform.DefaultConfigPath()
		if err != nil {
			return nil, nil, err
		}
	}
	doc, err := document.Read(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Loaded config from %s (%d entries)", configPath, len(doc.Entries))

	a := app.New(sch, doc)
	a.GhosttyPath = ghosttyPath

	if withCatalog {
		loadCatalog(a, client, settings)
	}
	return a, client, nil
}

// loadCatalog fills in theme, font, action, and keybind data. Failures
// degrade to empty lists with a warning; the core editing commands still
// work without them.
func loadCatalog(a *app.App, client *ghostty.Client, settings *config.Settings) {
	var themeList []themes.Theme
	var err error
	if settings.ThemeDir != "" {
		themeList, err = themes.LoadDir(settings.ThemeDir)
	} else {
		themeList, err = themes.Load()
	}
	if err != nil {
		logger.Warn("Failed to load themes: %v", err)
	}
	a.Themes = themeList

	if fonts, err := client.ListFonts(); err != nil {
		logger.Warn("Failed to load fonts: %v", err)
	} else {
		a.Fonts = fonts
	}

	if actions, err := client.ListActions(); err != nil {
		logger.Warn("Failed to load actions: %v", err)
	} else {
		a.Actions = actions
	}

	if keybinds, err := client.ListKeybinds(); err != nil {
		logger.Warn("Failed to load default keybinds: %v", err)
	} else {
		a.DefaultKeybinds = keybinds
	}
}

// getEditor resolves the editor for the edit command: tool settings, then
// $EDITOR, then vi.
func getEditor(settings *config.Settings) string {
	if settings != nil && settings.Editor != "" {
		return settings.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}
