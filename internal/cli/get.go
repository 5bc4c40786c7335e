package cli

import (
	"github.com/madeye/ghostty-config/internal/output"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get the current value of a config option",
	Long: `Print the configured value for a key, falling back to the
schema default when the key is not set.

Examples:
  ghostty-config get font-size
  ghostty-config get theme --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	_, set := a.Value(key)
	display := a.DisplayValue(key)

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"key":   key,
			"value": display,
			"set":   set,
		})
	}

	output.Print("%s", display)
	return nil
}
