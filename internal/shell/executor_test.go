package shell

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOSExecutorCapturesStdout(t *testing.T) {
	res, err := OSExecutor{}.Run(context.Background(), "echo", []string{"hello"})
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(res.Stdout))
	require.Empty(t, res.Stderr)
	require.Equal(t, 0, res.ExitCode)
}

func TestOSExecutorCapturesStderr(t *testing.T) {
	res, err := OSExecutor{}.Run(context.Background(), "sh", []string{"-c", "echo oops >&2; exit 1"})
	require.ErrorIs(t, err, ErrProcessFailed)
	require.Equal(t, "oops\n", string(res.Stderr))
	require.Equal(t, 1, res.ExitCode)
}

func TestOSExecutorNotFound(t *testing.T) {
	_, err := OSExecutor{}.Run(context.Background(), "definitely-not-a-command-xyz", nil)
	require.ErrorIs(t, err, ErrProcessNotFound)
}

func TestOSExecutorNonzeroExit(t *testing.T) {
	res, err := OSExecutor{}.Run(context.Background(), "sh", []string{"-c", "exit 3"})
	require.ErrorIs(t, err, ErrProcessFailed)
	require.Equal(t, 3, res.ExitCode)
}

func TestOSExecutorWithFinder(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "myscript")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho from-script\n"), 0o755))

	runner := OSExecutor{Finder: NewPathFinderFrom([]string{dir})}

	res, err := runner.Run(context.Background(), "myscript", nil)
	require.NoError(t, err)
	require.Equal(t, "from-script\n", string(res.Stdout))

	// names the finder cannot resolve never spawn
	_, err = runner.Run(context.Background(), "not-there", nil)
	require.ErrorIs(t, err, ErrProcessNotFound)
}

func TestOSExecutorInterrupted(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := OSExecutor{}.Run(ctx, "sleep", []string{"10"})
	require.ErrorIs(t, err, ErrInterrupted)
}
