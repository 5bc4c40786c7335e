package cli

import (
	"github.com/madeye/ghostty-config/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and edit options interactively",
	Long: `Open an interactive browser over all config options, grouped by
category. Edits are kept in memory until saved with 's'.

Examples:
  ghostty-config browse`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, _, err := loadApp(true)
	if err != nil {
		return err
	}

	return tui.Run(a)
}
