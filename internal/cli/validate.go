package cli

import (
	"strings"

	"github.com/madeye/ghostty-config/internal/output"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Long: `Run ghostty's own config validation and print the report.

Examples:
  ghostty-config validate
  ghostty-config validate --json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, client, err := loadApp(false)
	if err != nil {
		return err
	}

	report := client.Validate()
	valid := strings.TrimSpace(report) == "Configuration is valid!"

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"valid":  valid,
			"report": report,
		})
	}

	if valid {
		output.Success("%s", strings.TrimSpace(report))
	} else {
		output.Error("%s", strings.TrimSpace(report))
	}
	return nil
}
