// Package config loads the user's alias file and resolves the default file
// locations for the shell.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	aliasFileName   = ".yshrc"
	historyFileName = ".ysh_history"
)

// Alias lines look like: alias ll = "ls -l". Whitespace around the equals
// sign is flexible; anything else in the file is ignored.
var aliasPattern = regexp.MustCompile(`alias\s+(\S+)\s*=\s*"(.+)"`)

// LoadAliases parses the alias config file into a name-to-command map. Lines
// that do not match the alias form are skipped; the first definition of a
// name wins. A missing file yields an empty table.
func LoadAliases(path string) (map[string]string, error) {
	aliases := make(map[string]string)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return aliases, nil
		}
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		m := aliasPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if _, ok := aliases[m[1]]; ok {
			continue
		}
		aliases[m[1]] = m[2]
	}
	return aliases, nil
}

// HistoryPath returns the default history file location in the user's home.
func HistoryPath() string {
	return inHome(historyFileName)
}

// AliasPath returns the default alias config file location.
func AliasPath() string {
	return inHome(aliasFileName)
}

func inHome(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}
