package schema

import "strings"

// exactCategories maps keys whose category cannot be derived from any
// prefix rule.
var exactCategories = map[string]Category{
	"theme":             Appearance,
	"keybind":           Keybindings,
	"palette":           Colors,
	"config-file":       Advanced,
	"term":              Terminal,
	"enquiry-response":  Terminal,
	"title":             Window,
	"class":             GTKLinux,
	"x11-instance-name": GTKLinux,
	"scrollback-limit":  Scrollback,
	"link":              Mouse,
	"link-url":          Mouse,
}

// categoryRule pairs a key predicate with the category it assigns.
type categoryRule struct {
	match    func(key string) bool
	category Category
}

// categoryRules is evaluated top to bottom and the first match wins. The
// order is part of the contract: "split-color" must hit the Colors rule
// before the Appearance rule below it ever sees the key.
var categoryRules = []categoryRule{
	{func(k string) bool { return strings.HasPrefix(k, "font-") }, Fonts},
	{func(k string) bool { return strings.HasPrefix(k, "cursor-") }, Cursor},
	{func(k string) bool {
		return strings.HasPrefix(k, "mouse-") || strings.HasPrefix(k, "click-")
	}, Mouse},
	{func(k string) bool {
		return strings.HasPrefix(k, "clipboard-") || strings.HasPrefix(k, "copy-on-select")
	}, Clipboard},
	{func(k string) bool {
		return strings.HasPrefix(k, "shell-") ||
			k == "command" ||
			k == "wait-after-command" ||
			k == "initial-command"
	}, Shell},
	{func(k string) bool {
		return strings.HasPrefix(k, "window-") ||
			strings.HasPrefix(k, "resize-") ||
			strings.HasPrefix(k, "fullscreen") ||
			k == "confirm-close-surface"
	}, Window},
	{func(k string) bool { return strings.HasPrefix(k, "background") }, Background},
	{func(k string) bool {
		return strings.HasPrefix(k, "foreground") ||
			strings.HasPrefix(k, "selection-") ||
			strings.Contains(k, "color") ||
			k == "bold-is-bright" ||
			k == "minimum-contrast" ||
			k == "palette" ||
			k == "invert-selection-fg-bg" ||
			k == "bold-color" ||
			k == "faint-opacity"
	}, Colors},
	{func(k string) bool {
		return strings.HasPrefix(k, "macos-") ||
			strings.HasPrefix(k, "auto-update") ||
			strings.HasPrefix(k, "quick-terminal")
	}, MacOS},
	{func(k string) bool {
		return strings.HasPrefix(k, "gtk-") ||
			strings.HasPrefix(k, "adw-") ||
			strings.HasPrefix(k, "linux-")
	}, GTKLinux},
	{func(k string) bool {
		return strings.HasPrefix(k, "scrollback") || strings.HasPrefix(k, "scroll-")
	}, Scrollback},
	{func(k string) bool {
		return strings.HasPrefix(k, "input-") ||
			k == "vt-kam-allowed" ||
			strings.HasPrefix(k, "desktop-notifications")
	}, Input},
	{func(k string) bool { return strings.HasPrefix(k, "adjust-") && adjustKeys[k] }, Fonts},
	{func(k string) bool {
		return k == "unfocused-split-fill" ||
			k == "split-color" ||
			strings.HasPrefix(k, "unfocused-split")
	}, Appearance},
	{func(k string) bool {
		return k == "osc-color-report-format" ||
			k == "abnormal-command-exit-runtime" ||
			k == "image-storage-limit" ||
			k == "custom-shader" ||
			k == "custom-shader-animation" ||
			strings.HasPrefix(k, "grapheme-") ||
			strings.HasPrefix(k, "freetype-") ||
			k == "async-backend"
	}, Advanced},
	{func(k string) bool {
		return k == "minimum-contrast" ||
			k == "bold-is-bright" ||
			strings.HasPrefix(k, "cell-") ||
			strings.HasPrefix(k, "focus-") ||
			strings.HasPrefix(k, "unfocused-")
	}, Appearance},
}

// adjustKeys is the family of font metric adjustment keys.
var adjustKeys = map[string]bool{
	"adjust-cell-width":              true,
	"adjust-cell-height":             true,
	"adjust-font-baseline":           true,
	"adjust-underline-position":      true,
	"adjust-underline-thickness":     true,
	"adjust-strikethrough-position":  true,
	"adjust-strikethrough-thickness": true,
	"adjust-overline-position":       true,
	"adjust-overline-thickness":      true,
	"adjust-cursor-thickness":        true,
	"adjust-cursor-height":           true,
	"adjust-box-thickness":           true,
}

// Categorize assigns a UI category to a config key. It always returns
// exactly one category; keys matching no rule are Advanced.
func Categorize(key string) Category {
	if cat, ok := exactCategories[key]; ok {
		return cat
	}
	for _, rule := range categoryRules {
		if rule.match(key) {
			return rule.category
		}
	}
	return Advanced
}
