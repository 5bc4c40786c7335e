package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the config as plain text",
	Long: `Print the config file contents, or write them to a file.

Examples:
  ghostty-config export
  ghostty-config export backup.conf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	text := a.ExportText()

	if len(args) == 1 {
		if err := os.WriteFile(args[0], []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[0], err)
		}
		return outputResult(map[string]string{"file": args[0]}, "Exported config to %s", args[0])
	}

	fmt.Print(text)
	return nil
}
