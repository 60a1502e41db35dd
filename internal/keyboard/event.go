package keyboard

// Key identifies a named key.
type Key int

const (
	// KeyRune is any printable character; the character is in Event.Rune.
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeySpace
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

// Event is one decoded keystroke. Esc is delivered with Release set: the
// session acts on it as a release event, everything else as a press.
type Event struct {
	Key     Key
	Rune    rune
	Release bool
}
