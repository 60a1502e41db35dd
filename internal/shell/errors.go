package shell

import "errors"

// Error kinds for everything the dispatcher reports as a one-line diagnostic.
// They are matched with errors.Is at the dispatch boundary; none of them ever
// terminate the session.
var (
	// cd builtin
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotADirectory     = errors.New("not a directory")

	// external processes
	ErrProcessNotFound   = errors.New("command not found")
	ErrProcessPermission = errors.New("command not executable")
	ErrProcessFailed     = errors.New("process exited with failure")
	ErrInterrupted       = errors.New("process interrupted")
)

// QuotingError reports a command line whose quoting never closed. The
// dispatcher degrades it to running the whole line as a single program name.
type QuotingError struct {
	Input string
}

func (e *QuotingError) Error() string {
	return "unterminated quoting in " + e.Input
}
