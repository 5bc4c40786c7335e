package schema

// Category groups config options for presentation.
type Category int

// UI categories in display order.
const (
	Fonts Category = iota
	Colors
	Window
	Cursor
	Mouse
	Clipboard
	Keybindings
	Shell
	Appearance
	Background
	MacOS
	GTKLinux
	Scrollback
	Input
	Terminal
	Advanced
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		Fonts, Colors, Window, Cursor, Mouse, Clipboard, Keybindings, Shell,
		Appearance, Background, MacOS, GTKLinux, Scrollback, Input, Terminal,
		Advanced,
	}
}

// Slug returns the URL-safe identifier for the category.
func (c Category) Slug() string {
	switch c {
	case Fonts:
		return "fonts"
	case Colors:
		return "colors"
	case Window:
		return "window"
	case Cursor:
		return "cursor"
	case Mouse:
		return "mouse"
	case Clipboard:
		return "clipboard"
	case Keybindings:
		return "keybindings"
	case Shell:
		return "shell"
	case Appearance:
		return "appearance"
	case Background:
		return "background"
	case MacOS:
		return "macos"
	case GTKLinux:
		return "gtk-linux"
	case Scrollback:
		return "scrollback"
	case Input:
		return "input"
	case Terminal:
		return "terminal"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	switch c {
	case Fonts:
		return "Fonts"
	case Colors:
		return "Colors"
	case Window:
		return "Window"
	case Cursor:
		return "Cursor"
	case Mouse:
		return "Mouse"
	case Clipboard:
		return "Clipboard"
	case Keybindings:
		return "Keybindings"
	case Shell:
		return "Shell"
	case Appearance:
		return "Appearance"
	case Background:
		return "Background"
	case MacOS:
		return "macOS"
	case GTKLinux:
		return "GTK / Linux"
	case Scrollback:
		return "Scrollback"
	case Input:
		return "Input"
	case Terminal:
		return "Terminal"
	case Advanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// Icon returns a short glyph for the category.
func (c Category) Icon() string {
	switch c {
	case Fonts:
		return "Aa"
	case Colors:
		return "\U0001f3a8"
	case Window:
		return "□"
	case Cursor:
		return "▍"
	case Mouse:
		return "\U0001f5b1"
	case Clipboard:
		return "\U0001f4cb"
	case Keybindings:
		return "⌨"
	case Shell:
		return ">_"
	case Appearance:
		return "✨"
	case Background:
		return "\U0001f5bc"
	case MacOS:
		return "\U0001f34e"
	case GTKLinux:
		return "\U0001f427"
	case Scrollback:
		return "↕"
	case Input:
		return "✏"
	case Terminal:
		return "\U0001f4df"
	case Advanced:
		return "⚙"
	default:
		return "?"
	}
}

// String implements fmt.Stringer using the display name.
func (c Category) String() string {
	return c.DisplayName()
}

// CategoryFromSlug resolves a slug back to its category.
func CategoryFromSlug(slug string) (Category, bool) {
	for _, c := range Categories() {
		if c.Slug() == slug {
			return c, true
		}
	}
	return Advanced, false
}
