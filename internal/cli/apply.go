package cli

import (
	"github.com/madeye/ghostty-config/internal/ghostty"
	"github.com/madeye/ghostty-config/internal/logger"
	"github.com/madeye/ghostty-config/internal/output"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Tell a running Ghostty to reload its config",
	Long: `Ask a running Ghostty instance to reload its configuration.

Only supported on macOS, where it sends the reload shortcut via
AppleScript. On other platforms reload manually inside Ghostty.

Examples:
  ghostty-config apply`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	if err := ghostty.Reload(deps.Executor); err != nil {
		logger.Debug("Reload failed: %v", err)
		output.Warn("Could not trigger reload, use Cmd+Shift+, inside Ghostty")
		return nil
	}

	return outputResult(map[string]bool{"reloaded": true}, "Ghostty reloaded")
}
