package keyboard

import "unicode/utf8"

// decode consumes the longest decodable prefix of buf and returns the events
// it produced plus the undecoded remainder. Unknown sequences and stray
// control bytes are dropped; an incomplete escape sequence or multibyte rune
// stays in the remainder until more bytes arrive.
func decode(buf []byte) ([]Event, []byte) {
	var events []Event

	for len(buf) > 0 {
		switch b := buf[0]; {
		case b == 0x1b:
			ev, n, ok := decodeEscape(buf)
			if !ok {
				return events, buf
			}
			buf = buf[n:]
			if ev != nil {
				events = append(events, *ev)
			}

		case b == '\r' || b == '\n':
			events = append(events, Event{Key: KeyEnter})
			buf = buf[1:]

		case b == 0x7f || b == 0x08:
			events = append(events, Event{Key: KeyBackspace})
			buf = buf[1:]

		case b == '\t':
			events = append(events, Event{Key: KeyTab})
			buf = buf[1:]

		case b == ' ':
			events = append(events, Event{Key: KeySpace})
			buf = buf[1:]

		case b < 0x20:
			// other control bytes have no binding
			buf = buf[1:]

		default:
			if !utf8.FullRune(buf) {
				return events, buf
			}
			r, size := utf8.DecodeRune(buf)
			buf = buf[size:]
			if r != utf8.RuneError {
				events = append(events, Event{Key: KeyRune, Rune: r})
			}
		}
	}

	return events, nil
}

var csiKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

var csiTildeKeys = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

// decodeEscape handles a buffer starting with ESC. A lone ESC byte is the
// escape key itself; reads from a raw terminal deliver a full sequence in one
// chunk, so a bare 0x1b at the end of the buffer is not ambiguous in
// practice. Returns ok=false when the sequence is truncated mid-stream.
func decodeEscape(buf []byte) (*Event, int, bool) {
	if len(buf) == 1 || buf[1] != '[' {
		return &Event{Key: KeyEsc, Release: true}, 1, true
	}
	if len(buf) < 3 {
		return nil, 0, false
	}

	if key, ok := csiKeys[buf[2]]; ok {
		return &Event{Key: key}, 3, true
	}

	if key, ok := csiTildeKeys[buf[2]]; ok {
		if len(buf) < 4 {
			return nil, 0, false
		}
		if buf[3] == '~' {
			return &Event{Key: key}, 4, true
		}
	}

	// unrecognized CSI sequence: skip up to its final byte
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return nil, i + 1, true
		}
	}
	return nil, 0, false
}
