// Package config manages the ghostty-config tool's own settings stored in
// YAML format.
//
// These settings are for the tool itself, not for ghostty: path overrides for
// the ghostty binary, the config file, and the themes directory, plus the
// preferred editor for the edit command. Settings are stored in the user's
// home directory at ~/.config/ghostty-config/config.yaml.
//
// Example config.yaml:
//
//	ghostty_path: /usr/local/bin/ghostty
//	config_path: /home/user/.config/ghostty/config
//	theme_dir: /usr/share/ghostty/themes
//	editor: nvim
//
// All fields are optional; empty values mean auto-detection at startup.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Editor = "vim"
//	err = cfg.Save()
//
// # Thread Safety
//
// Settings operations are NOT thread-safe. Callers must implement their own
// synchronization if accessing Settings from multiple goroutines.
package config
