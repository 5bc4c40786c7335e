package ghostty

import (
	"fmt"
	"runtime"

	"github.com/madeye/ghostty-config/internal/errors"
	"github.com/madeye/ghostty-config/internal/executor"
)

// reloadScript sends Cmd+Shift+, to a running ghostty process, which
// triggers its reload_config keybind.
const reloadScript = `tell application "System Events"
    if (name of processes) contains "ghostty" then
        tell process "ghostty"
            keystroke "," using {command down, shift down}
        end tell
    end if
end tell`

// Reload asks a running ghostty instance to reload its configuration.
// Only supported on macOS; other platforms return an error so callers
// can tell the user to reload manually.
func Reload(exec executor.CommandExecutor) error {
	if runtime.GOOS != "darwin" {
		return errors.Wrap(errors.ErrCodeExec, "auto-reload not supported on this platform", nil)
	}

	_, stderr, err := exec.Execute("osascript", "-e", reloadScript)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExec, fmt.Sprintf("osascript error: %s", stderr), err)
	}
	return nil
}
