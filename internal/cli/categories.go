package cli

import (
	"strconv"

	"github.com/madeye/ghostty-config/internal/output"
	"github.com/madeye/ghostty-config/internal/schema"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List option categories",
	Long: `List all option categories with their option counts.

Examples:
  ghostty-config categories
  ghostty-config categories --json`,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

type categoryInfo struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Options int    `json:"options"`
}

func runCategories(cmd *cobra.Command, args []string) error {
	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	var infos []categoryInfo
	for _, cat := range schema.Categories() {
		infos = append(infos, categoryInfo{
			Slug:    cat.Slug(),
			Name:    cat.DisplayName(),
			Icon:    cat.Icon(),
			Options: len(a.Schema.OptionsForCategory(cat)),
		})
	}

	if jsonOutput {
		return output.JSON(infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{info.Slug, info.Name, strconv.Itoa(info.Options)})
	}
	output.Table([]string{"SLUG", "NAME", "OPTIONS"}, rows)
	return nil
}
