package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
)

// PlainSession is the line-at-a-time fallback used when stdin is not an
// interactive terminal or --plain is given: readline provides the editing,
// while the dispatcher and history store are the same ones the raw session
// uses, so aliases, builtins, and persistence behave identically.
type PlainSession struct {
	dispatcher *Dispatcher
	history    *History
	index      *CommandIndex
	prompt     string
	log        zerolog.Logger

	persistOnce sync.Once
}

func NewPlainSession(d *Dispatcher, hist *History, index *CommandIndex, prompt string, logger zerolog.Logger) *PlainSession {
	return &PlainSession{
		dispatcher: d,
		history:    hist,
		index:      index,
		prompt:     prompt,
		log:        logger,
	}
}

// Run reads and dispatches lines until exit, EOF, or Ctrl+D.
func (p *PlainSession) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       promptStyle.Render(p.prompt),
		AutoComplete: newIndexCompleter(p.index),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	defer p.shutdown()

	p.log.Debug().Msg("plain session started")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil { // io.EOF or closed input
			return nil
		}
		if p.dispatcher.Dispatch(ctx, line) == Terminate {
			return nil
		}
	}
}

func (p *PlainSession) shutdown() {
	p.persistOnce.Do(func() {
		if err := p.history.Persist(); err != nil {
			p.log.Error().Err(err).Msg("persisting history")
		}
	})
}

// indexCompleter completes command names from the index: matches are
// deduplicated and sorted, multiple matches collapse to their longest common
// prefix, and no match rings the bell.
type indexCompleter struct {
	inner readline.AutoCompleter
	bell  io.Writer
}

func newIndexCompleter(index *CommandIndex) *indexCompleter {
	names := index.Names()
	sort.Strings(names)

	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		items = append(items, readline.PcItem(name))
	}
	return &indexCompleter{
		inner: readline.NewPrefixCompleter(items...),
		bell:  os.Stdout,
	}
}

func (c *indexCompleter) Do(line []rune, pos int) ([][]rune, int) {
	matches, offset := c.inner.Do(line, pos)
	matches = dedupe(matches)
	sort.Slice(matches, func(i, j int) bool {
		return string(matches[i]) < string(matches[j])
	})

	switch len(matches) {
	case 0:
		fmt.Fprint(c.bell, "\a")
		return nil, 0
	case 1:
		return matches, offset
	}

	strs := make([]string, len(matches))
	for i, m := range matches {
		strs[i] = strings.TrimSpace(string(m))
	}
	if lcp := commonPrefix(strs); lcp != "" {
		// readline replaces line[offset:pos] with the first match, so a
		// single-element result applies the common prefix
		return [][]rune{[]rune(lcp)}, offset
	}
	return matches, offset
}

func dedupe(matches [][]rune) [][]rune {
	seen := make(map[string]struct{})
	unique := make([][]rune, 0, len(matches))
	for _, m := range matches {
		s := string(m)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}
