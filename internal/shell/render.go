package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Prompt is what the session prints at the start of every line.
const Prompt = "ysh>"

// clearLine moves to column zero and wipes to end of line.
const clearLine = "\r\x1b[K"

var (
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Renderer owns every escape sequence the session emits. Command output and
// diagnostics share the same writer, so redraws always start from column
// zero rather than assuming a clean line.
type Renderer struct {
	w      io.Writer
	prompt string
}

func NewRenderer(w io.Writer, prompt string) *Renderer {
	return &Renderer{w: w, prompt: prompt}
}

// Prompt prints the prompt without a trailing newline.
func (r *Renderer) Prompt() {
	fmt.Fprint(r.w, promptStyle.Render(r.prompt))
}

// Echo prints a single typed character in place.
func (r *Renderer) Echo(c rune) {
	fmt.Fprintf(r.w, "%c", c)
}

// Newline moves output past the edited line before command output starts.
func (r *Renderer) Newline() {
	fmt.Fprintln(r.w)
}

// Highlight redraws the whole line with the buffer in the attention color,
// overwriting stale cells and walking the cursor back to the end of the text.
func (r *Renderer) Highlight(line string) {
	r.repaint(highlightStyle.Render(line), len([]rune(line))-1)
}

// Unhighlight redraws the whole line in the default color.
func (r *Renderer) Unhighlight(line string) {
	r.repaint(line, len([]rune(line))-1)
}

// Recall replaces the line with a history entry, padding with spaces so a
// shorter entry visually overwrites a longer one.
func (r *Renderer) Recall(line string, padding int) {
	r.repaint(line, padding)
}

func (r *Renderer) repaint(body string, padding int) {
	if padding < 0 {
		padding = 0
	}
	fmt.Fprint(r.w, "\r", promptStyle.Render(r.prompt), body,
		strings.Repeat(" ", padding), strings.Repeat("\b", padding))
}

// Redraw clears the line and reprints prompt plus buffer.
func (r *Renderer) Redraw(line string) {
	fmt.Fprint(r.w, clearLine, promptStyle.Render(r.prompt), line)
}

// RedrawSplit clears the line and reprints it with the leading highlighted
// command still in the attention color and the tail in the default color.
func (r *Renderer) RedrawSplit(command, line string) {
	rest := string([]rune(line)[len([]rune(command)):])
	fmt.Fprint(r.w, clearLine, promptStyle.Render(r.prompt), highlightStyle.Render(command), rest)
}

// Matches prints the full completion match list on its own line, above the
// prompt the caller re-renders afterwards.
func (r *Renderer) Matches(matches []string) {
	fmt.Fprintf(r.w, "\n%s\n", strings.Join(matches, "  "))
}
