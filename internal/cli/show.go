package cli

import (
	"github.com/madeye/ghostty-config/internal/errors"
	"github.com/madeye/ghostty-config/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show details of a config option",
	Long: `Show an option's type, category, default, current value, and documentation.

Examples:
  ghostty-config show font-size
  ghostty-config show theme --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

type showDetail struct {
	Key           string   `json:"key"`
	Value         string   `json:"value,omitempty"`
	Default       string   `json:"default"`
	Type          string   `json:"type"`
	EnumValues    []string `json:"enum_values,omitempty"`
	Category      string   `json:"category"`
	Repeatable    bool     `json:"repeatable"`
	Set           bool     `json:"set"`
	Documentation string   `json:"documentation,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	key := args[0]

	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	opt, ok := a.Schema.FindOption(key)
	if !ok {
		return errors.NotFound(key)
	}

	value, set := a.Value(key)
	detail := showDetail{
		Key:           opt.Key,
		Value:         value,
		Default:       opt.DefaultValue,
		Type:          opt.Type.Kind.String(),
		EnumValues:    opt.Type.EnumValues,
		Category:      opt.Category.Slug(),
		Repeatable:    opt.Repeatable,
		Set:           set,
		Documentation: opt.Documentation,
	}

	if jsonOutput {
		return output.JSON(detail)
	}

	output.Print("")
	output.KeyValue(detail.Key, a.DisplayValue(key))
	output.Print("")
	output.Print("Type:       %s", detail.Type)
	if len(detail.EnumValues) > 0 {
		output.Print("Values:     %v", detail.EnumValues)
	}
	output.Print("Category:   %s", detail.Category)
	output.Print("Default:    %s", detail.Default)
	if detail.Repeatable {
		output.Print("Repeatable: yes")
	}
	if detail.Set {
		output.Print("Set:        yes")
	} else {
		output.Print("Set:        no (showing default)")
	}
	if detail.Documentation != "" {
		output.Print("")
		output.Print("%s", detail.Documentation)
	}
	output.Print("")

	return nil
}
