package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/mgregory22/priorities/editor"
)

var (
	// ErrInterrupted is returned when ctrl+c is pressed while editing.
	ErrInterrupted = errors.New("console: interrupted")
	// ErrCancelled is returned when esc is pressed while editing.
	ErrCancelled = errors.New("console: cancelled")
)

const defaultWidth = 80

// Console writes to a terminal and reads keys from it.
type Console struct {
	in       *bufio.Reader
	out      *termenv.Output
	renderer *lipgloss.Renderer
	style    Style
	keys     editor.KeyMap

	width int
	col   int

	// ctx, when set, ends a blocked ReadKey. Keys then come from a reader
	// goroutine over pump.
	ctx  context.Context
	pump chan keyResult

	restore func() error
}

// Open puts stdin in raw mode and returns a console on stdin and stdout.
// Close restores the terminal.
func Open() (*Console, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("console: raw mode: %w", err)
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		_ = term.Restore(fd, state)
		return nil, fmt.Errorf("console: terminal size: %w", err)
	}

	c := New(os.Stdin, os.Stdout, width)
	c.restore = func() error { return term.Restore(fd, state) }
	return c, nil
}

// New returns a console on r and w. A width below 1 falls back to 80.
func New(r io.Reader, w io.Writer, width int) *Console {
	if width < 1 {
		width = defaultWidth
	}
	out := termenv.NewOutput(w)
	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(out.Profile)

	return &Console{
		in:       bufio.NewReader(r),
		out:      out,
		renderer: renderer,
		style:    DefaultStyle(renderer),
		keys:     editor.DefaultKeyMap(),
		width:    width,
	}
}

// Close restores the terminal state saved by Open.
func (c *Console) Close() error {
	if c.restore == nil {
		return nil
	}
	restore := c.restore
	c.restore = nil
	if err := restore(); err != nil {
		return fmt.Errorf("console: restore: %w", err)
	}
	return nil
}

// BindContext makes ReadKey return the context's error once ctx is done,
// even while waiting for input.
func (c *Console) BindContext(ctx context.Context) {
	c.ctx = ctx
}

func (c *Console) Width() int { return c.width }

// SetWidth overrides the terminal width. Values below 1 are ignored.
func (c *Console) SetWidth(w int) {
	if w > 0 {
		c.width = w
	}
}

func (c *Console) Style() Style { return c.style }

func (c *Console) SetStyle(s Style) { c.style = s }

func (c *Console) Renderer() *lipgloss.Renderer { return c.renderer }

func (c *Console) KeyMap() editor.KeyMap { return c.keys }

func (c *Console) SetKeyMap(km editor.KeyMap) { c.keys = km }

// Print writes s, turning "\n" into "\r\n" so raw mode returns to column 0.
func (c *Console) Print(s string) {
	if s == "" {
		return
	}
	c.write(strings.ReplaceAll(s, "\n", "\r\n"))

	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		c.col = lipgloss.Width(s[i+1:])
	} else {
		c.col += lipgloss.Width(s)
	}
}

// Println is Print followed by a line break.
func (c *Console) Println(s string) {
	c.Print(s + "\n")
}

// Printf formats according to format and prints the result.
func (c *Console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

func (c *Console) write(s string) {
	_, _ = io.WriteString(c.out, s)
}
