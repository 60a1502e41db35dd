package shell

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/RubyLLL/ysh/internal/keyboard"
)

// KeySource is the session's view of the keyboard: a serial stream of key
// events and a way to shut it down.
type KeySource interface {
	Events() <-chan keyboard.Event
	Stop()
}

// Session drives the per-keystroke state machine. It owns the line buffer
// and the highlight state, delegates history navigation and completion, and
// hands finalized lines to the dispatcher. All mutation happens on the one
// goroutine consuming the key stream.
type Session struct {
	buf        LineBuffer
	history    *History
	index      *CommandIndex
	dispatcher *Dispatcher
	render     *Renderer
	log        zerolog.Logger

	// highlight state: command is the buffer content at the moment it
	// matched a known name, sep is set once a space has been typed and
	// cleared when backspacing removes the last one
	command    string
	colorized  bool
	sep        bool
	prevRecall string

	persistOnce sync.Once
}

// NewSession wires a session. The renderer and the dispatcher's output
// writer should be the same stream.
func NewSession(hist *History, index *CommandIndex, d *Dispatcher, r *Renderer, logger zerolog.Logger) *Session {
	return &Session{
		history:    hist,
		index:      index,
		dispatcher: d,
		render:     r,
		log:        logger,
	}
}

// Run processes key events to completion, one at a time, until the session
// terminates. Both termination paths, the exit builtin and the esc release,
// persist history exactly once before returning.
func (s *Session) Run(ctx context.Context, keys KeySource) error {
	s.log.Debug().Msg("session started")
	s.render.Prompt()

	for ev := range keys.Events() {
		if ev.Release {
			if ev.Key == keyboard.KeyEsc {
				// esc ends the session immediately, skipping the usual
				// enter-driven termination path
				s.shutdown()
				keys.Stop()
				return nil
			}
			continue
		}
		if s.process(ctx, ev) == Terminate {
			s.shutdown()
			keys.Stop()
			return nil
		}
	}

	s.shutdown()
	return nil
}

func (s *Session) process(ctx context.Context, ev keyboard.Event) Outcome {
	switch ev.Key {
	case keyboard.KeyEnter:
		return s.submit(ctx)
	case keyboard.KeyBackspace:
		s.backspace()
	case keyboard.KeyUp:
		s.recall(Up)
	case keyboard.KeyDown:
		s.recall(Down)
	case keyboard.KeyTab:
		s.complete()
	case keyboard.KeyLeft, keyboard.KeyRight, keyboard.KeyHome, keyboard.KeyEnd,
		keyboard.KeyPageUp, keyboard.KeyPageDown, keyboard.KeyDelete:
		// the editor only ever touches the tail of the line
	case keyboard.KeySpace:
		s.insert(' ')
	case keyboard.KeyRune:
		s.insert(ev.Rune)
	}
	return Continue
}

// insert appends a character and keeps the highlight in sync: an exact match
// against the command index turns the line red, losing the match before any
// space was typed turns it back, and everything else is a plain echo with no
// full-line redraw.
func (s *Session) insert(r rune) {
	if r == ' ' {
		s.sep = true
	}
	s.buf.Append(r)

	line := s.buf.String()
	if s.index.Known(line) {
		s.render.Highlight(line)
		s.colorized = true
		s.command = line
		return
	}
	if s.colorized && !s.sep {
		s.render.Unhighlight(line)
		s.colorized = false
		return
	}
	s.render.Echo(r)
}

func (s *Session) backspace() {
	if s.buf.Len() > 0 {
		s.buf.PopLast()
		if !s.buf.ContainsSpace() {
			s.sep = false
		}
		if s.buf.Len() < len([]rune(s.command)) {
			s.command = ""
		}
	}
	if s.command != "" {
		s.render.RedrawSplit(s.command, s.buf.String())
	} else {
		s.render.Redraw(s.buf.String())
	}
}

// recall replaces the buffer with the neighboring history entry, padded so a
// shorter entry overwrites the longer one previously on screen.
func (s *Session) recall(dir Direction) {
	cmd := s.history.Navigate(dir)
	padding := len([]rune(s.prevRecall)) - len([]rune(cmd))
	s.render.Recall(cmd, padding)
	s.buf.Set(cmd)
	s.prevRecall = cmd
}

func (s *Session) complete() {
	completion, ok := Complete(s.buf.String())
	if !ok {
		return
	}
	s.buf.Set(completion.Line)
	s.render.Redraw(s.buf.String())
	if len(completion.Matches) > 1 {
		s.render.Matches(completion.Matches)
		s.render.Redraw(s.buf.String())
	}
}

// submit finalizes the line and dispatches it. The executor runs
// synchronously; no key events are consumed until it returns. An OS
// interrupt delivered meanwhile cancels the child and is reported as a
// diagnostic without ending the session.
func (s *Session) submit(ctx context.Context) Outcome {
	s.render.Newline()

	line := strings.TrimSpace(s.buf.String())
	s.command = ""
	s.sep = false

	if line != "" {
		runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
		outcome := s.dispatcher.Dispatch(runCtx, line)
		stop()
		if outcome == Terminate {
			return Terminate
		}
	}

	s.buf.Clear()
	s.render.Prompt()
	return Continue
}

// shutdown persists new history entries. Guarded so the exit and esc paths
// cannot both write.
func (s *Session) shutdown() {
	s.persistOnce.Do(func() {
		if err := s.history.Persist(); err != nil {
			s.log.Error().Err(err).Msg("persisting history")
		}
		s.log.Debug().Msg("session terminated")
	})
}
