package shell

// LineBuffer holds the in-progress command line. The editor only ever works
// on the tail of the line: characters are appended or popped, never inserted.
type LineBuffer struct {
	runes []rune
}

// Append adds one character to the end of the buffer.
func (b *LineBuffer) Append(r rune) {
	b.runes = append(b.runes, r)
}

// PopLast removes the last character. Popping an empty buffer is a no-op.
func (b *LineBuffer) PopLast() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Clear empties the buffer.
func (b *LineBuffer) Clear() {
	b.runes = b.runes[:0]
}

// Set replaces the buffer content wholesale. History recall uses this.
func (b *LineBuffer) Set(s string) {
	b.runes = []rune(s)
}

func (b *LineBuffer) String() string {
	return string(b.runes)
}

func (b *LineBuffer) Len() int {
	return len(b.runes)
}

// ContainsSpace reports whether any space remains in the buffer. Backspace
// uses this to decide when the highlight lock is released.
func (b *LineBuffer) ContainsSpace() bool {
	for _, r := range b.runes {
		if r == ' ' {
			return true
		}
	}
	return false
}
