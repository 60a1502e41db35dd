// Package log builds the shell's logger. Logs go to a file, never the
// terminal, so structured output cannot corrupt the prompt line.
package log

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a file-backed logger and its close func. An empty path
// disables logging entirely.
func New(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}
