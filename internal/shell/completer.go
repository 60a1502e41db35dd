package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// Tab completion only fires when the line starts with one of these, so a
// bare command name never gets filename-completed into nonsense.
var completionPrefixes = []string{"cd ", "ls ", "pwd ", "grep "}

// Completion is the outcome of a tab press: the filesystem entries that
// matched and the buffer content after applying their common prefix.
type Completion struct {
	Matches []string
	Line    string
}

// Complete computes filename completion for the current line. The second
// return is false when the line has no completable prefix or nothing matched;
// the buffer is left alone in that case.
func Complete(line string) (Completion, bool) {
	prefix := completionPrefix(line)
	if prefix == "" {
		return Completion{}, false
	}
	matches := listMatches(line[len(prefix):])
	if len(matches) == 0 {
		return Completion{}, false
	}
	return Completion{
		Matches: matches,
		Line:    prefix + commonPrefix(matches),
	}, true
}

func completionPrefix(line string) string {
	for _, p := range completionPrefixes {
		if strings.HasPrefix(line, p) {
			return p
		}
	}
	return ""
}

// listMatches lists directory entries whose name starts with the remainder
// text. A remainder with a path separator is split into directory and name;
// a missing directory yields no matches rather than an error.
func listMatches(text string) []string {
	if strings.HasPrefix(text, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			text = home + text[1:]
		}
	}

	if !strings.ContainsRune(text, os.PathSeparator) {
		return matchIn(".", text, false)
	}

	dir, rest := filepath.Split(text)
	if dir == "" {
		dir = "."
	}
	return matchIn(dir, rest, true)
}

func matchIn(dir, namePrefix string, joinDir bool) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var matches []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), namePrefix) {
			continue
		}
		if joinDir {
			matches = append(matches, filepath.Join(dir, e.Name()))
		} else {
			matches = append(matches, e.Name())
		}
	}
	return matches
}

// commonPrefix returns the longest prefix shared by every item.
func commonPrefix(items []string) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}

	runes := make([][]rune, len(items))
	minLen := -1
	for i, it := range items {
		runes[i] = []rune(it)
		if minLen < 0 || len(runes[i]) < minLen {
			minLen = len(runes[i])
		}
	}

	prefixLen := 0
	for i := 0; i < minLen; i++ {
		ch := runes[0][i]
		for _, it := range runes[1:] {
			if it[i] != ch {
				return string(runes[0][:prefixLen])
			}
		}
		prefixLen++
	}
	return string(runes[0][:prefixLen])
}
