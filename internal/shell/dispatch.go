package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
)

// Builtins handled without spawning a process. Also the seed for the
// highlight index.
var builtinNames = []string{"cd", "history", "exit"}

// Outcome tells the session what to do after a submitted line is handled.
type Outcome int

const (
	Continue Outcome = iota
	Terminate
)

// Dispatcher classifies submitted lines and executes them: alias expansion
// first, then the builtins, then everything else goes to the executor.
type Dispatcher struct {
	aliases  map[string]string
	history  *History
	executor Executor
	out      io.Writer
	log      zerolog.Logger
}

// NewDispatcher wires a dispatcher. All command output and diagnostics go to
// out; the logger only ever writes to its own sink.
func NewDispatcher(aliases map[string]string, hist *History, exec Executor, out io.Writer, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		aliases:  aliases,
		history:  hist,
		executor: exec,
		out:      out,
		log:      logger,
	}
}

// Dispatch handles one submitted line. The typed form goes into history
// before anything runs, so history shows what the user typed even when an
// alias expands it or the command fails.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) Outcome {
	line = strings.TrimSpace(line)
	if line == "" {
		return Continue
	}

	d.history.Append(line)

	if replacement, ok := d.aliases[line]; ok {
		d.log.Debug().Str("alias", line).Str("command", replacement).Msg("alias expanded")
		line = replacement
	}

	switch {
	case line == "exit":
		return Terminate
	case strings.HasPrefix(line, "cd"):
		d.changeDir(strings.Fields(line))
		return Continue
	case line == "history":
		for _, cmd := range d.history.Entries() {
			fmt.Fprintln(d.out, cmd)
		}
		return Continue
	}

	d.runExternal(ctx, line)
	return Continue
}

// changeDir implements the cd builtin. With no argument it goes home. Every
// failure becomes a single printed line; the working directory is untouched.
func (d *Dispatcher) changeDir(args []string) {
	var dir string
	if len(args) < 2 {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(d.out, "cd: %v\n", err)
			return
		}
		dir = home
	} else {
		dir = args[1]
	}

	if err := classifyChdir(os.Chdir(dir)); err != nil {
		switch {
		case errors.Is(err, ErrDirectoryNotFound):
			fmt.Fprintf(d.out, "File %s not found!\n", dir)
		case errors.Is(err, ErrPermissionDenied):
			fmt.Fprintf(d.out, "No execute permission on %s!\n", dir)
		case errors.Is(err, ErrNotADirectory):
			fmt.Fprintf(d.out, "%s is not a directory!\n", dir)
		default:
			fmt.Fprintf(d.out, "cd: %s: %v\n", dir, err)
		}
		d.log.Warn().Err(err).Str("dir", dir).Msg("cd failed")
	}
}

// classifyChdir maps an os.Chdir failure onto the error taxonomy.
func classifyChdir(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrDirectoryNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%w: %v", ErrNotADirectory, err)
	default:
		return err
	}
}

// runExternal tokenizes the line and hands it to the executor. Captured
// stdout then stderr are printed verbatim, with nothing appended.
func (d *Dispatcher) runExternal(ctx context.Context, line string) {
	args, err := ParseArgs(line)
	if err != nil || len(args) == 0 {
		// malformed quoting degrades to running the whole line as the program
		var qe *QuotingError
		if errors.As(err, &qe) {
			d.log.Debug().Str("line", line).Msg("quoting parse failed, running as single token")
		}
		args = []string{line}
	}

	res, err := d.executor.Run(ctx, args[0], args[1:])
	d.out.Write(res.Stdout)
	d.out.Write(res.Stderr)
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, ErrProcessFailed):
		// stderr was already shown; only speak up when the child said nothing
		if len(res.Stderr) == 0 {
			fmt.Fprintf(d.out, "%s: exited with status %d\n", args[0], res.ExitCode)
		}
		d.log.Warn().Str("command", args[0]).Int("exit", res.ExitCode).Msg("command failed")
	case errors.Is(err, ErrProcessNotFound):
		fmt.Fprintf(d.out, "Could not find command: %s\n", args[0])
	case errors.Is(err, ErrProcessPermission):
		fmt.Fprintf(d.out, "Could not run command: %s\n", args[0])
	case errors.Is(err, ErrInterrupted):
		fmt.Fprintln(d.out, "Process terminated")
	default:
		fmt.Fprintf(d.out, "Failed to run command: %s\n", args[0])
		d.log.Error().Err(err).Str("command", args[0]).Msg("execution error")
	}
}
