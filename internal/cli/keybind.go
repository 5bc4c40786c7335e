package cli

import (
	"github.com/madeye/ghostty-config/internal/ghostty"
	"github.com/madeye/ghostty-config/internal/output"
	"github.com/spf13/cobra"
)

var keybindShowDefaults bool

var keybindCmd = &cobra.Command{
	Use:   "keybind",
	Short: "Manage keybindings",
}

var keybindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List keybindings",
	Long: `List custom keybindings from the config file. With --defaults,
also show ghostty's built-in keybindings.

Examples:
  ghostty-config keybind list
  ghostty-config keybind list --defaults`,
	RunE: runKeybindList,
}

var keybindAddCmd = &cobra.Command{
	Use:   "add <trigger> <action>",
	Short: "Add a keybinding and save",
	Long: `Add a custom keybinding to the config file.

Examples:
  ghostty-config keybind add ctrl+shift+t new_tab
  ghostty-config keybind add ctrl+1 goto_tab:1`,
	Args: cobra.ExactArgs(2),
	RunE: runKeybindAdd,
}

var keybindRmCmd = &cobra.Command{
	Use:   "rm <trigger> <action>",
	Short: "Remove a keybinding and save",
	Long: `Remove a custom keybinding matching the exact trigger and action.

Examples:
  ghostty-config keybind rm ctrl+shift+t new_tab`,
	Args: cobra.ExactArgs(2),
	RunE: runKeybindRm,
}

func init() {
	keybindListCmd.Flags().BoolVar(&keybindShowDefaults, "defaults", false, "Include ghostty's default keybindings")
	keybindCmd.AddCommand(keybindListCmd)
	keybindCmd.AddCommand(keybindAddCmd)
	keybindCmd.AddCommand(keybindRmCmd)
	rootCmd.AddCommand(keybindCmd)
}

type keybindList struct {
	Custom   []ghostty.Keybinding `json:"custom"`
	Defaults []ghostty.Keybinding `json:"defaults,omitempty"`
}

func runKeybindList(cmd *cobra.Command, args []string) error {
	a, _, err := loadApp(keybindShowDefaults)
	if err != nil {
		return err
	}

	list := keybindList{Custom: a.CustomKeybinds()}
	if keybindShowDefaults {
		list.Defaults = a.DefaultKeybinds
	}

	if jsonOutput {
		return output.JSON(list)
	}

	if len(list.Custom) == 0 {
		output.Info("No custom keybindings configured")
	} else {
		rows := make([][]string, 0, len(list.Custom))
		for _, kb := range list.Custom {
			rows = append(rows, []string{kb.Trigger, kb.Action})
		}
		output.Heading("Custom")
		output.Table([]string{"TRIGGER", "ACTION"}, rows)
	}

	if keybindShowDefaults && len(list.Defaults) > 0 {
		rows := make([][]string, 0, len(list.Defaults))
		for _, kb := range list.Defaults {
			rows = append(rows, []string{kb.Trigger, kb.Action})
		}
		output.Print("")
		output.Heading("Defaults")
		output.Table([]string{"TRIGGER", "ACTION"}, rows)
	}
	return nil
}

func runKeybindAdd(cmd *cobra.Command, args []string) error {
	trigger, action := args[0], args[1]

	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	if err := a.AddKeybind(trigger, action); err != nil {
		return err
	}
	if err := a.Save(); err != nil {
		return err
	}

	return outputResult(
		ghostty.Keybinding{Trigger: trigger, Action: action},
		"Added keybind %s=%s", trigger, action)
}

func runKeybindRm(cmd *cobra.Command, args []string) error {
	trigger, action := args[0], args[1]

	a, _, err := loadApp(false)
	if err != nil {
		return err
	}

	removed := a.DeleteKeybind(trigger, action)
	if removed == 0 {
		output.Warn("No keybind matching %s=%s", trigger, action)
		return nil
	}
	if err := a.Save(); err != nil {
		return err
	}

	return outputResult(
		ghostty.Keybinding{Trigger: trigger, Action: action},
		"Removed keybind %s=%s", trigger, action)
}
