package cli

import (
	"github.com/spf13/cobra"
)

var unsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a config option and save",
	Long: `Remove all entries for a key from the config file, reverting it
to ghostty's built-in default.

Examples:
  ghostty-config unset font-size
  ghostty-config unset keybind`,
	Args: cobra.ExactArgs(1),
	RunE: runUnset,
}

func init() {
	rootCmd.AddCommand(unsetCmd)
}

func runUnset(cmd *cobra.Command, args []string) error {
	key := args[0]

	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	a.Remove(key)
	if err := a.Save(); err != nil {
		return err
	}

	return outputResult(setResult{Success: true, Key: key, Removed: true},
		"Reset %s to default", key)
}
