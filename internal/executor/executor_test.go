package executor

import (
	"errors"
	"testing"
)

func TestSystemExecutor_Execute(t *testing.T) {
	exec := NewSystemExecutor()

	t.Run("echo command", func(t *testing.T) {
		stdout, stderr, err := exec.Execute("echo", "hello")
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if string(stdout) != "hello\n" {
			t.Errorf("expected 'hello\\n' on stdout, got '%s'", string(stdout))
		}
		if len(stderr) != 0 {
			t.Errorf("expected empty stderr, got '%s'", string(stderr))
		}
	})

	t.Run("stderr is captured separately", func(t *testing.T) {
		stdout, stderr, err := exec.Execute("sh", "-c", "echo out; echo err >&2")
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if string(stdout) != "out\n" {
			t.Errorf("expected 'out\\n' on stdout, got '%s'", string(stdout))
		}
		if string(stderr) != "err\n" {
			t.Errorf("expected 'err\\n' on stderr, got '%s'", string(stderr))
		}
	})

	t.Run("nonexistent command", func(t *testing.T) {
		_, _, err := exec.Execute("nonexistent-command-xyz-12345")
		if err == nil {
			t.Error("expected error for nonexistent command")
		}
	})
}

func TestSystemExecutor_LookPath(t *testing.T) {
	exec := NewSystemExecutor()

	t.Run("find sh", func(t *testing.T) {
		path, err := exec.LookPath("sh")
		if err != nil {
			t.Fatalf("LookPath failed: %v", err)
		}
		if path == "" {
			t.Error("expected non-empty path")
		}
	})

	t.Run("nonexistent command", func(t *testing.T) {
		_, err := exec.LookPath("nonexistent-command-xyz-12345")
		if err == nil {
			t.Error("expected error for nonexistent command")
		}
	})
}

func TestMockExecutor_Execute(t *testing.T) {
	t.Run("default behavior", func(t *testing.T) {
		mock := &MockExecutor{}
		stdout, stderr, err := mock.Execute("test", "arg1", "arg2")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if string(stdout) != "" || string(stderr) != "" {
			t.Errorf("expected empty output, got '%s' / '%s'", stdout, stderr)
		}
		// Verify call was recorded
		if len(mock.Calls) != 1 {
			t.Errorf("expected 1 call, got %d", len(mock.Calls))
		}
		if mock.Calls[0].Name != "test" {
			t.Errorf("expected command 'test', got '%s'", mock.Calls[0].Name)
		}
	})

	t.Run("custom function", func(t *testing.T) {
		mock := &MockExecutor{
			ExecuteFunc: func(name string, args ...string) ([]byte, []byte, error) {
				return []byte("mocked stdout"), []byte("mocked stderr"), nil
			},
		}
		stdout, stderr, err := mock.Execute("test")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if string(stdout) != "mocked stdout" {
			t.Errorf("expected 'mocked stdout', got '%s'", string(stdout))
		}
		if string(stderr) != "mocked stderr" {
			t.Errorf("expected 'mocked stderr', got '%s'", string(stderr))
		}
	})

	t.Run("error case", func(t *testing.T) {
		mock := &MockExecutor{
			ExecuteFunc: func(name string, args ...string) ([]byte, []byte, error) {
				return nil, []byte("error output"), errors.New("mock error")
			},
		}
		_, stderr, err := mock.Execute("test")
		if err == nil {
			t.Error("expected error")
		}
		if string(stderr) != "error output" {
			t.Errorf("expected 'error output', got '%s'", string(stderr))
		}
	})
}

func TestMockExecutor_LookPath(t *testing.T) {
	t.Run("default behavior", func(t *testing.T) {
		mock := &MockExecutor{}
		path, err := mock.LookPath("ghostty")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if path != "/usr/bin/ghostty" {
			t.Errorf("expected '/usr/bin/ghostty', got '%s'", path)
		}
	})

	t.Run("custom function", func(t *testing.T) {
		mock := &MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				if file == "ghostty" {
					return "/usr/local/bin/ghostty", nil
				}
				return "", errors.New("not found")
			},
		}

		path, err := mock.LookPath("ghostty")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if path != "/usr/local/bin/ghostty" {
			t.Errorf("expected '/usr/local/bin/ghostty', got '%s'", path)
		}

		_, err = mock.LookPath("unknown")
		if err == nil {
			t.Error("expected error for unknown command")
		}
	})
}
