package cli

import (
	"fmt"

	"github.com/madeye/ghostty-config/internal/output"
	"github.com/madeye/ghostty-config/internal/schema"
	"github.com/spf13/cobra"
)

var listSetOnly bool

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List config options",
	Long: `List config options, optionally filtered by category slug.

Examples:
  ghostty-config list
  ghostty-config list fonts
  ghostty-config list colors --set
  ghostty-config list --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listSetOnly, "set", false, "Only show options set in the config file")
	rootCmd.AddCommand(listCmd)
}

type optionRow struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Default  string `json:"default"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Set      bool   `json:"set"`
}

func runList(cmd *cobra.Command, args []string) error {
	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	options := a.Schema.Options
	if len(args) == 1 {
		cat, ok := schema.CategoryFromSlug(args[0])
		if !ok {
			return fmt.Errorf("unknown category %q (see 'ghostty-config categories')", args[0])
		}
		var filtered []schema.Option
		for _, opt := range a.Schema.OptionsForCategory(cat) {
			filtered = append(filtered, *opt)
		}
		options = filtered
	}

	var rows []optionRow
	for _, opt := range options {
		value, set := a.Value(opt.Key)
		if listSetOnly && !set {
			continue
		}
		rows = append(rows, optionRow{
			Key:      opt.Key,
			Value:    value,
			Default:  opt.DefaultValue,
			Type:     opt.Type.Kind.String(),
			Category: opt.Category.Slug(),
			Set:      set,
		})
	}

	if jsonOutput {
		return output.JSON(rows)
	}

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		display := row.Value
		if !row.Set {
			display = row.Default
		}
		marker := ""
		if row.Set {
			marker = "*"
		}
		tableRows = append(tableRows, []string{row.Key, display, row.Type, marker})
	}
	output.Table([]string{"KEY", "VALUE", "TYPE", "SET"}, tableRows)
	return nil
}
