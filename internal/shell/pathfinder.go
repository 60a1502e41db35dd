package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// PathFinder handles PATH resolution and executable lookup
type PathFinder struct {
	paths []string
}

// NewPathFinder creates a new PathFinder with the system PATH
func NewPathFinder() *PathFinder {
	return &PathFinder{
		paths: strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)),
	}
}

// NewPathFinderFrom uses an explicit directory list instead of $PATH.
func NewPathFinderFrom(paths []string) *PathFinder {
	return &PathFinder{paths: paths}
}

// FindExecutable searches for a command in PATH directories
// Returns the full path if found, empty string otherwise
func (pf *PathFinder) FindExecutable(command string) string {
	for _, p := range pf.paths {
		fp := filepath.Join(p, command)
		if info, err := os.Stat(fp); err == nil && info.Mode().IsRegular() && (info.Mode()&0111 != 0) {
			return fp
		}
	}
	return ""
}

// Executables returns the names of all executable files found in PATH
// directories, deduplicated.
func (pf *PathFinder) Executables() []string {
	seen := make(map[string]struct{})

	for _, path := range pf.paths {
		entries, err := os.ReadDir(path)
		if err != nil {
			continue // skip if cannot read
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				continue
			}

			if info.Mode()&0111 != 0 {
				seen[entry.Name()] = struct{}{}
			}
		}
	}

	result := make([]string, 0, len(seen))
	for exe := range seen {
		result = append(result, exe)
	}
	return result
}

// CommandIndex is the set of names the session renders highlighted: the
// builtins, everything executable on PATH, and the alias names. It is only
// consulted for highlighting; execution resolves names through the executor.
type CommandIndex struct {
	names map[string]struct{}
}

// NewCommandIndex builds the recognized-command set.
func NewCommandIndex(executables []string, aliases map[string]string) *CommandIndex {
	idx := &CommandIndex{names: make(map[string]struct{})}
	for _, b := range builtinNames {
		idx.names[b] = struct{}{}
	}
	for _, exe := range executables {
		idx.names[exe] = struct{}{}
	}
	for name := range aliases {
		idx.names[name] = struct{}{}
	}
	return idx
}

// Known reports whether name is a recognized command.
func (idx *CommandIndex) Known(name string) bool {
	_, ok := idx.names[name]
	return ok
}

// Names returns every recognized command name, unordered.
func (idx *CommandIndex) Names() []string {
	names := make([]string, 0, len(idx.names))
	for name := range idx.names {
		names = append(names, name)
	}
	return names
}
