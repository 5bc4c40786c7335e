package cli

import (
	"strings"

	"github.com/madeye/ghostty-config/internal/output"
	"github.com/spf13/cobra"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List fonts visible to ghostty",
	Long: `List the font families ghostty can use, with their styles.

Examples:
  ghostty-config fonts
  ghostty-config fonts --json`,
	RunE: runFonts,
}

func init() {
	rootCmd.AddCommand(fontsCmd)
}

func runFonts(cmd *cobra.Command, args []string) error {
	a, _, err := loadApp(true)
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(a.Fonts)
	}

	rows := make([][]string, 0, len(a.Fonts))
	for _, f := range a.Fonts {
		rows = append(rows, []string{f.Name, strings.Join(f.Styles, ", ")})
	}
	output.Table([]string{"FAMILY", "STYLES"}, rows)
	return nil
}
