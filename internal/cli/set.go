package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setForce bool

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config option and save",
	Long: `Set a config value and write it to the config file.

Setting a key to its default value (or to an empty string) removes it
from the file instead, keeping the config minimal. Keys not known to the
installed ghostty version are rejected unless --force is given.

Examples:
  ghostty-config set font-size 14
  ghostty-config set theme catppuccin-mocha
  ghostty-config set my-future-option x --force`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().BoolVarP(&setForce, "force", "f", false, "Allow keys not present in the schema")
	rootCmd.AddCommand(setCmd)
}

type setResult struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
	Value   string `json:"value"`
	Removed bool   `json:"removed,omitempty"`
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	if _, ok := a.Schema.FindOption(key); !ok && !setForce {
		return fmt.Errorf("unknown config option %q (use --force to set anyway)", key)
	}

	a.SetValue(key, value)
	if err := a.Save(); err != nil {
		return err
	}

	_, stillSet := a.Value(key)
	result := setResult{Success: true, Key: key, Value: value, Removed: !stillSet}

	if result.Removed {
		return outputResult(result, "Removed %s (value matches default)", key)
	}
	return outputResult(result, "Set %s = %s", key, value)
}
