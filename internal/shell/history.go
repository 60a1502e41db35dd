package shell

import (
	"bufio"
	"os"
)

// Direction selects which way Navigate walks the history log.
type Direction int

const (
	Up Direction = iota
	Down
)

// History is an append-only log of submitted commands with a navigation
// cursor. The persisted marker counts the leading entries that came from the
// backing file, so Persist only writes what this session added.
type History struct {
	file      string
	items     []string
	cursor    int
	persisted int
}

// NewHistory creates a history store backed by the given file. Call Load
// before use.
func NewHistory(file string) *History {
	return &History{file: file}
}

// Load reads the backing file into the log, oldest first. A missing file is
// not an error; the log just starts empty. The cursor lands on the most
// recent entry so the first up-arrow recalls it.
func (h *History) Load() error {
	f, err := os.Open(h.file)
	if err != nil {
		if os.IsNotExist(err) {
			h.cursor = -1
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			h.items = append(h.items, line)
		}
	}
	h.persisted = len(h.items)
	h.cursor = len(h.items) - 1
	return scanner.Err()
}

// Append records a submitted command. Empty commands are dropped, and a
// "history" entry directly after another "history" entry is dropped so
// navigating does not fill the log with itself.
func (h *History) Append(cmd string) {
	if cmd == "" {
		return
	}
	if cmd == "history" && len(h.items) > 0 && h.items[len(h.items)-1] == "history" {
		return
	}
	h.items = append(h.items, cmd)
	h.cursor = len(h.items)
}

// Navigate moves the cursor one step and returns the entry it lands on. Up
// stops at the oldest entry; down past the newest entry keeps returning the
// newest rather than blanking the line. An empty log returns "".
func (h *History) Navigate(dir Direction) string {
	switch dir {
	case Up:
		if h.cursor > 0 {
			h.cursor--
		}
	case Down:
		if h.cursor < len(h.items)-1 {
			h.cursor++
		}
	}
	if len(h.items) == 0 {
		return ""
	}
	if h.cursor >= 0 && h.cursor < len(h.items) {
		return h.items[h.cursor]
	}
	// cursor sits one past the end right after an append
	return h.items[len(h.items)-1]
}

// Entries returns a copy of the full log, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.items))
	copy(out, h.items)
	return out
}

func (h *History) Len() int {
	return len(h.items)
}

// Persist appends the entries added since Load (or the previous Persist) to
// the backing file and advances the persisted marker. Calling it again with
// no new entries writes nothing.
func (h *History) Persist() error {
	if h.persisted >= len(h.items) {
		return nil
	}
	f, err := os.OpenFile(h.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, cmd := range h.items[h.persisted:] {
		if _, err := w.WriteString(cmd + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	h.persisted = len(h.items)
	return nil
}
