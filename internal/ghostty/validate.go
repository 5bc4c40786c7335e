package ghostty

import (
	"fmt"
	"strings"
)

// Validate runs ghostty +validate-config and returns the report text.
// Execution failures are folded into the report so the caller always
// gets something to show.
func (c *Client) Validate() string {
	output, err := c.Run("+validate-config")
	if err != nil {
		return fmt.Sprintf("Validation error: %v", err)
	}
	if strings.TrimSpace(output) == "" {
		return "Configuration is valid!"
	}
	return output
}
