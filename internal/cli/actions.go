package cli

import (
	"github.com/madeye/ghostty-config/internal/output"
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List keybind actions",
	Long: `List the action names that can be bound to keys.

Examples:
  ghostty-config actions
  ghostty-config actions --json`,
	RunE: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}

func runActions(cmd *cobra.Command, args []string) error {
	a, _, err := loadApp(true)
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(a.Actions)
	}

	for _, action := range a.Actions {
		output.Print("%s", action)
	}
	return nil
}
