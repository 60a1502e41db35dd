package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
)

// Result holds the captured output of a finished child process.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Executor spawns external programs and captures their output. Run blocks
// until the child finishes; cancelling ctx interrupts it.
type Executor interface {
	Run(ctx context.Context, name string, args []string) (Result, error)
}

// OSExecutor runs programs through os/exec. With a Finder set, bare names
// are resolved against its PATH scan while argv[0] keeps the name the user
// typed; without one, resolution is left to exec.LookPath.
type OSExecutor struct {
	Finder *PathFinder
}

func (e OSExecutor) Run(ctx context.Context, name string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if e.Finder != nil && !strings.ContainsRune(name, os.PathSeparator) {
		full := e.Finder.FindExecutable(name)
		if full == "" {
			return Result{}, fmt.Errorf("%s: %w", name, ErrProcessNotFound)
		}
		cmd.Path = full
		cmd.Err = nil
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}

	if ctx.Err() != nil {
		return res, fmt.Errorf("%s: %w", name, ErrInterrupted)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, fmt.Errorf("%s: %w", name, ErrProcessFailed)
	}
	if errors.Is(err, exec.ErrNotFound) {
		return res, fmt.Errorf("%s: %w", name, ErrProcessNotFound)
	}
	if errors.Is(err, fs.ErrPermission) {
		return res, fmt.Errorf("%s: %w", name, ErrProcessPermission)
	}
	return res, err
}
