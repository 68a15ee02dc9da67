//go:build unix

package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMainEnv makes the test binary behave like the todo binary.
const runMainEnv = "TODO_TEST_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func startTodo(t *testing.T) (*exec.Cmd, io.WriteCloser, *os.File) {
	t.Helper()

	exe, err := os.Executable()
	require.NoError(t, err)

	cmd := exec.Command(exe)
	cmd.Env = append(os.Environ(),
		runMainEnv+"=1",
		"XDG_CONFIG_HOME="+t.TempDir(),
		"TODO_STORE_BACKEND=sqlite",
		"TODO_SQLITE_PATH=:memory:",
	)

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)

	stdoutR, stdoutW, err := os.Pipe()
	require.NoError(t, err)
	cmd.Stdout = stdoutW

	require.NoError(t, cmd.Start())
	stdoutW.Close()
	t.Cleanup(func() {
		stdin.Close()
		stdoutR.Close()
	})
	return cmd, stdin, stdoutR
}

// waitFor reads r until want shows up or the deadline passes.
func waitFor(t *testing.T, r io.Reader, want string) {
	t.Helper()

	found := make(chan struct{})
	go func() {
		var seen []byte
		buf := make([]byte, 512)
		for {
			n, err := r.Read(buf)
			seen = append(seen, buf[:n]...)
			if bytes.Contains(seen, []byte(want)) {
				close(found)
				io.Copy(io.Discard, r)
				return
			}
			if err != nil {
				return
			}
		}
	}()

	select {
	case <-found:
	case <-time.After(10 * time.Second):
		t.Fatalf("output never contained %q", want)
	}
}

func waitExit(t *testing.T, cmd *exec.Cmd) error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		return err
	case <-time.After(10 * time.Second):
		cmd.Process.Kill()
		<-done
		t.Fatal("process did not exit")
		return nil
	}
}

func TestInterruptAtMenuPromptEndsProcess(t *testing.T) {
	if signal.Ignored(os.Interrupt) {
		t.Skip("interrupt is ignored by the parent process")
	}

	cmd, _, stdout := startTodo(t)
	waitFor(t, stdout, "(e) to exit")

	require.NoError(t, cmd.Process.Signal(os.Interrupt))
	err := waitExit(t, cmd)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	require.True(t, ok)
	assert.True(t, status.Signaled(), "exit status %v", status)
	assert.Equal(t, syscall.SIGINT, status.Signal())
}

func TestExitChoiceEndsProcess(t *testing.T) {
	cmd, stdin, stdout := startTodo(t)
	waitFor(t, stdout, "(e) to exit")

	_, err := io.WriteString(stdin, "e\n")
	require.NoError(t, err)

	assert.NoError(t, waitExit(t, cmd))
}
