package ghostty

import "strings"

// ListActions loads all available action names from ghostty +list-actions.
func (c *Client) ListActions() ([]string, error) {
	output, err := c.Run("+list-actions")
	if err != nil {
		return nil, err
	}
	return ParseActionList(output), nil
}

// ParseActionList parses +list-actions output, one action name per line.
func ParseActionList(output string) []string {
	var actions []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		actions = append(actions, line)
	}
	return actions
}
