package ghostty

import "strings"

// Keybinding is a parsed trigger/action pair.
type Keybinding struct {
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
}

// ListKeybinds loads the default keybindings from ghostty +list-keybinds.
func (c *Client) ListKeybinds() ([]Keybinding, error) {
	output, err := c.Run("+list-keybinds")
	if err != nil {
		return nil, err
	}
	return ParseKeybindList(output), nil
}

// ParseKeybindList parses +list-keybinds output.
// Each line has the form "keybind = trigger=action".
func ParseKeybindList(output string) []Keybinding {
	var keybinds []Keybinding

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if kb, ok := ParseKeybindValue(line); ok {
			keybinds = append(keybinds, kb)
		}
	}

	return keybinds
}

// ParseKeybindValue parses a single keybind value like
// "ctrl+shift+n=new_window", with or without the leading "keybind =".
func ParseKeybindValue(value string) (Keybinding, bool) {
	content := strings.TrimPrefix(value, "keybind")
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "=")
	content = strings.TrimSpace(content)

	trigger, action, found := strings.Cut(content, "=")
	if !found {
		return Keybinding{}, false
	}
	return Keybinding{
		Trigger: strings.TrimSpace(trigger),
		Action:  strings.TrimSpace(action),
	}, true
}
