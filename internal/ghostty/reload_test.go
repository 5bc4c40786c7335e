package ghostty

import (
	"runtime"
	"testing"

	"github.com/madeye/ghostty-config/internal/executor"
)

func TestReload(t *testing.T) {
	mock := &executor.MockExecutor{}

	err := Reload(mock)

	if runtime.GOOS != "darwin" {
		if err == nil {
			t.Error("expected error on non-macOS platform")
		}
		if len(mock.Calls) != 0 {
			t.Error("no command should run on non-macOS platform")
		}
		return
	}

	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if len(mock.Calls) != 1 || mock.Calls[0].Name != "osascript" {
		t.Errorf("expected one osascript call, got %+v", mock.Calls)
	}
}
