package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/madeye/ghostty-config/internal/output"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in an editor",
	Long: `Open the ghostty config file in an editor.

Uses the editor from the tool settings, then $EDITOR, then vi.

Examples:
  ghostty-config edit
  EDITOR=nano ghostty-config edit`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	settings, err := deps.Settings.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	a, client, err := loadApp(false)
	if err != nil {
		return err
	}

	configPath := a.ConfigPath()

	// Create the file first so the editor does not start on a phantom path
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := a.Save(); err != nil {
			return err
		}
		output.Info("Created %s", configPath)
	}

	editor := getEditor(settings)
	editorPath, err := deps.Executor.LookPath(editor)
	if err != nil {
		return fmt.Errorf("editor not found: %s", editor)
	}

	output.Info("Opening %s with %s...", configPath, editor)

	// The editor needs the real terminal, so it runs outside the executor
	run := exec.Command(editorPath, configPath)
	run.Stdin = os.Stdin
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr

	if err := run.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	output.Success("Editor closed")
	output.Print("%s", client.Validate())
	return nil
}
