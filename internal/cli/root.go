package cli

import (
	"os"

	"github.com/madeye/ghostty-config/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ghostty-config",
	Short: "Ghostty configuration manager",
	Long: `ghostty-config is a CLI tool for inspecting and editing Ghostty's configuration.

It extracts the full option schema from the ghostty binary itself, so the
known keys, defaults, and documentation always match the installed version.
Commands cover browsing options by category, getting and setting values,
managing keybindings and themes, and validating the config.`,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
