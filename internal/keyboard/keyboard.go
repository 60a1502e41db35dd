// Package keyboard turns a raw-mode terminal into a stream of named key
// events for the session loop.
package keyboard

import (
	"errors"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the input is not an interactive terminal;
// callers fall back to plain line mode.
var ErrNotTerminal = errors.New("keyboard: input is not a terminal")

// Source reads raw bytes from a terminal and emits decoded key events, one
// at a time, until Stop is called or the input closes.
type Source struct {
	in     *os.File
	fd     int
	state  *term.State
	events chan Event
	done   chan struct{}
	stop   sync.Once
}

// New puts the terminal into raw mode and starts the read loop. The caller
// must call Stop to restore the terminal state.
func New(in *os.File) (*Source, error) {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return nil, ErrNotTerminal
	}

	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	s := &Source{
		in:     in,
		fd:     fd,
		state:  state,
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

// Events is the serial stream of keystrokes. It closes when the input does.
func (s *Source) Events() <-chan Event {
	return s.events
}

// Stop restores the terminal and ends the stream. Safe to call twice.
func (s *Source) Stop() {
	s.stop.Do(func() {
		close(s.done)
		term.Restore(s.fd, s.state)
	})
}

func (s *Source) readLoop() {
	defer close(s.events)

	var pending []byte
	buf := make([]byte, 64)
	for {
		n, err := s.in.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			var events []Event
			events, pending = decode(pending)
			for _, ev := range events {
				select {
				case s.events <- ev:
				case <-s.done:
					return
				}
			}
		}
		if err != nil {
			return
		}
		select {
		case <-s.done:
			return
		default:
		}
	}
}
