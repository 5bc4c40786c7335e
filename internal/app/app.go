// Package app holds the in-memory editing state: the inferred schema, the
// user's config document, and the catalog data loaded from the ghostty
// binary (themes, fonts, actions, default keybinds).
//
// Edits accumulate in memory and are flushed with Save. Keys touched since
// the last save are tracked in an unsaved set so surfaces can show a
// pending-changes badge.
package app

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/madeye/ghostty-config/internal/document"
	"github.com/madeye/ghostty-config/internal/errors"
	"github.com/madeye/ghostty-config/internal/ghostty"
	"github.com/madeye/ghostty-config/internal/schema"
	"github.com/madeye/ghostty-config/internal/themes"
)

// App is the shared editing state.
type App struct {
	Schema      *schema.Schema
	GhosttyPath string

	// Catalog data loaded once at startup. Empty slices when the
	// corresponding ghostty command failed; surfaces degrade gracefully.
	Themes          []themes.Theme
	Fonts           []ghostty.FontFamily
	Actions         []string
	DefaultKeybinds []ghostty.Keybinding

	mu  sync.RWMutex
	doc *document.Document

	unsavedMu sync.Mutex
	unsaved   map[string]struct{}
}

// New creates an App around a schema and the user's config document.
func New(s *schema.Schema, doc *document.Document) *App {
	return &App{
		Schema:  s,
		doc:     doc,
		unsaved: make(map[string]struct{}),
	}
}

// Value returns the raw configured value for key, if set.
func (a *App) Value(key string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc.Get(key)
}

// DisplayValue returns the configured value for key, falling back to the
// schema default when the key is unset or empty.
func (a *App) DisplayValue(key string) string {
	value, _ := a.Value(key)
	if value != "" {
		return value
	}
	if opt, ok := a.Schema.FindOption(key); ok {
		return opt.DefaultValue
	}
	return ""
}

// Values returns all configured values for key, in file order.
func (a *App) Values(key string) []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc.GetAll(key)
}

// Settings returns every configured key-value pair in file order.
func (a *App) Settings() []document.Setting {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc.AllSetValues()
}

// SetValue updates key in memory. Setting a key to its schema default or
// to an empty value removes it instead, keeping the config file minimal.
func (a *App) SetValue(key, value string) {
	value = strings.TrimSpace(value)

	isDefault := false
	if opt, ok := a.Schema.FindOption(key); ok {
		isDefault = opt.DefaultValue == value
	}

	a.mu.Lock()
	if isDefault || value == "" {
		a.doc.Remove(key)
	} else {
		a.doc.Set(key, value)
	}
	a.mu.Unlock()

	a.markUnsaved(key)
}

// Remove deletes all entries for key in memory.
func (a *App) Remove(key string) {
	a.mu.Lock()
	a.doc.Remove(key)
	a.mu.Unlock()

	a.markUnsaved(key)
}

// AddKeybind appends a custom keybinding in memory.
func (a *App) AddKeybind(trigger, action string) error {
	trigger = strings.TrimSpace(trigger)
	action = strings.TrimSpace(action)
	if trigger == "" || action == "" {
		return errors.Validation("both trigger and action are required")
	}

	a.mu.Lock()
	a.doc.Append("keybind", fmt.Sprintf("%s=%s", trigger, action))
	a.mu.Unlock()

	a.markUnsaved("keybind")
	return nil
}

// DeleteKeybind removes a custom keybinding in memory.
// Returns the number of matching entries removed.
func (a *App) DeleteKeybind(trigger, action string) int {
	target := fmt.Sprintf("%s=%s", strings.TrimSpace(trigger), strings.TrimSpace(action))

	a.mu.Lock()
	removed := a.doc.RemoveValue("keybind", target)
	a.mu.Unlock()

	a.markUnsaved("keybind-delete")
	return removed
}

// CustomKeybinds returns the keybindings configured in the user's file.
func (a *App) CustomKeybinds() []ghostty.Keybinding {
	var keybinds []ghostty.Keybinding
	for _, value := range a.Values("keybind") {
		if kb, ok := ghostty.ParseKeybindValue(value); ok {
			keybinds = append(keybinds, kb)
		}
	}
	return keybinds
}

// ApplyTheme sets the theme key in memory.
func (a *App) ApplyTheme(name string) {
	a.mu.Lock()
	a.doc.Set("theme", name)
	a.mu.Unlock()

	a.markUnsaved("theme")
}

// FindTheme looks up a loaded theme by name.
func (a *App) FindTheme(name string) (themes.Theme, bool) {
	for _, t := range a.Themes {
		if t.Name == name {
			return t, true
		}
	}
	return themes.Theme{}, false
}

// ExportText renders the in-memory config as plain text.
func (a *App) ExportText() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc.Serialize()
}

// ImportText replaces the in-memory config with parsed text, keeping the
// file path. Nothing touches disk until Save.
func (a *App) ImportText(text string) {
	a.mu.Lock()
	imported := document.ParseText(text)
	imported.Path = a.doc.Path
	a.doc = imported
	a.mu.Unlock()

	a.markUnsaved("import")
}

// ConfigPath returns the path of the underlying config file.
func (a *App) ConfigPath() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc.Path
}

// Save writes the in-memory config to disk, then reloads it so memory
// matches the file, and clears the unsaved set.
func (a *App) Save() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.doc.Write(); err != nil {
		return err
	}

	reloaded, err := document.Read(a.doc.Path)
	if err != nil {
		return err
	}
	a.doc = reloaded

	a.clearUnsaved()
	return nil
}

func (a *App) markUnsaved(key string) {
	a.unsavedMu.Lock()
	defer a.unsavedMu.Unlock()
	a.unsaved[key] = struct{}{}
}

func (a *App) clearUnsaved() {
	a.unsavedMu.Lock()
	defer a.unsavedMu.Unlock()
	a.unsaved = make(map[string]struct{})
}

// UnsavedCount returns the number of keys touched since the last save.
func (a *App) UnsavedCount() int {
	a.unsavedMu.Lock()
	defer a.unsavedMu.Unlock()
	return len(a.unsaved)
}

// UnsavedKeys returns the touched keys in sorted order.
func (a *App) UnsavedKeys() []string {
	a.unsavedMu.Lock()
	defer a.unsavedMu.Unlock()

	keys := make([]string, 0, len(a.unsaved))
	for k := range a.unsaved {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
