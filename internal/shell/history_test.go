package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempHistory(t *testing.T) *History {
	t.Helper()
	return NewHistory(filepath.Join(t.TempDir(), "history"))
}

func TestHistoryAppendRejectsEmpty(t *testing.T) {
	h := tempHistory(t)
	require.NoError(t, h.Load())

	h.Append("")
	require.Equal(t, 0, h.Len())
}

func TestHistoryAppendRejectsRepeatedHistory(t *testing.T) {
	h := tempHistory(t)
	require.NoError(t, h.Load())

	h.Append("history")
	h.Append("history")
	require.Equal(t, []string{"history"}, h.Entries())

	// only back-to-back "history" entries are collapsed
	h.Append("ls")
	h.Append("history")
	require.Equal(t, []string{"history", "ls", "history"}, h.Entries())
}

func TestHistoryNavigateEmpty(t *testing.T) {
	h := tempHistory(t)
	require.NoError(t, h.Load())

	require.Equal(t, "", h.Navigate(Up))
	require.Equal(t, "", h.Navigate(Down))
}

func TestHistoryNavigateBounds(t *testing.T) {
	h := tempHistory(t)
	require.NoError(t, h.Load())
	h.Append("first")
	h.Append("second")
	h.Append("third")

	// first up shows the most recent command
	require.Equal(t, "third", h.Navigate(Up))
	require.Equal(t, "second", h.Navigate(Up))
	require.Equal(t, "first", h.Navigate(Up))
	// repeated up clamps at the oldest entry
	require.Equal(t, "first", h.Navigate(Up))
	require.Equal(t, "first", h.Navigate(Up))

	require.Equal(t, "second", h.Navigate(Down))
	require.Equal(t, "third", h.Navigate(Down))
	// repeated down at the end re-shows the last entry
	require.Equal(t, "third", h.Navigate(Down))
	require.Equal(t, "third", h.Navigate(Down))
}

func TestHistoryNavigateDownAfterAppend(t *testing.T) {
	h := tempHistory(t)
	require.NoError(t, h.Load())
	h.Append("only")

	// cursor sits past the end after an append; down re-shows the last entry
	require.Equal(t, "only", h.Navigate(Down))
}

func TestHistoryPersistRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")

	h1 := NewHistory(file)
	require.NoError(t, h1.Load())
	h1.Append("ls")
	h1.Append("cd /tmp")
	require.NoError(t, h1.Persist())

	h2 := NewHistory(file)
	require.NoError(t, h2.Load())
	require.Equal(t, []string{"ls", "cd /tmp"}, h2.Entries())

	h2.Append("pwd")
	require.NoError(t, h2.Persist())

	h3 := NewHistory(file)
	require.NoError(t, h3.Load())
	require.Equal(t, []string{"ls", "cd /tmp", "pwd"}, h3.Entries())
}

func TestHistoryPersistIdempotent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")

	h := NewHistory(file)
	require.NoError(t, h.Load())
	h.Append("ls")
	require.NoError(t, h.Persist())
	require.NoError(t, h.Persist()) // nothing new: no duplicate writes

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, "ls\n", string(data))
}

func TestHistoryLoadCursor(t *testing.T) {
	// single persisted entry: the first up recalls it
	file := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(file, []byte("one\n"), 0o644))

	h := NewHistory(file)
	require.NoError(t, h.Load())
	require.Equal(t, "one", h.Navigate(Up))
}

func TestHistoryLoadCursorMultiple(t *testing.T) {
	// the cursor starts on the newest loaded entry and up steps back from it
	file := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(file, []byte("one\ntwo\n"), 0o644))

	h := NewHistory(file)
	require.NoError(t, h.Load())
	require.Equal(t, "one", h.Navigate(Up))
	require.Equal(t, "two", h.Navigate(Down))
}
