package cli

import (
	"fmt"
	"os"

	"github.com/madeye/ghostty-config/internal/input"
	"github.com/madeye/ghostty-config/internal/output"
	"github.com/spf13/cobra"
)

var importForce bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the config with a file's contents",
	Long: `Replace the entire config file with the contents of another file.

The replacement is confirmed interactively unless --force is given.

Examples:
  ghostty-config import backup.conf
  ghostty-config import backup.conf --force`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	if !importForce {
		prompt := fmt.Sprintf("Replace %s with the contents of %s?", a.ConfigPath(), args[0])
		if !input.Confirm(deps.Stdin, prompt) {
			output.Info("Import cancelled")
			return nil
		}
	}

	a.ImportText(string(data))
	if err := a.Save(); err != nil {
		return err
	}

	return outputResult(
		map[string]string{"file": args[0]},
		"Imported config from %s", args[0])
}
