package console

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

const esc = 0x1b

type keyResult struct {
	msg tea.KeyMsg
	err error
}

// ReadKey blocks until a key arrives and decodes it. Escape sequences for
// arrows, home, end and delete are recognised; unknown sequences are skipped.
//
// With a context bound, ReadKey also returns when the context is done.
func (c *Console) ReadKey() (tea.KeyMsg, error) {
	if c.ctx == nil {
		return c.readKey()
	}
	if err := c.ctx.Err(); err != nil {
		return tea.KeyMsg{}, context.Cause(c.ctx)
	}
	if c.pump == nil {
		c.pump = make(chan keyResult)
		go c.pumpKeys(c.pump)
	}
	select {
	case r := <-c.pump:
		if r.err != nil {
			c.pump = nil
		}
		return r.msg, r.err
	case <-c.ctx.Done():
		return tea.KeyMsg{}, context.Cause(c.ctx)
	}
}

// pumpKeys reads keys until the first error, which is sent last.
func (c *Console) pumpKeys(ch chan<- keyResult) {
	for {
		msg, err := c.readKey()
		ch <- keyResult{msg: msg, err: err}
		if err != nil {
			return
		}
	}
}

func (c *Console) readKey() (tea.KeyMsg, error) {
	for {
		msg, ok, err := c.decodeKey()
		if err != nil {
			return tea.KeyMsg{}, err
		}
		if ok {
			return msg, nil
		}
	}
}

func (c *Console) decodeKey() (tea.KeyMsg, bool, error) {
	r, _, err := c.in.ReadRune()
	if err != nil {
		return tea.KeyMsg{}, false, err
	}

	switch {
	case r == esc:
		msg, ok := c.decodeEscape()
		return msg, ok, nil
	case r == '\r' || r == '\n':
		return tea.KeyMsg{Type: tea.KeyEnter}, true, nil
	case r == ' ':
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true, nil
	case r < ' ' || r == 0x7f:
		return tea.KeyMsg{Type: tea.KeyType(r)}, true, nil
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, true, nil
	}
}

// decodeEscape reads the rest of a sequence after ESC. A lone ESC, with
// nothing buffered behind it, is the escape key.
func (c *Console) decodeEscape() (tea.KeyMsg, bool) {
	if c.in.Buffered() == 0 {
		return tea.KeyMsg{Type: tea.KeyEsc}, true
	}

	r, _, err := c.in.ReadRune()
	if err != nil {
		return tea.KeyMsg{Type: tea.KeyEsc}, true
	}
	if r != '[' && r != 'O' {
		if r == esc {
			return tea.KeyMsg{Type: tea.KeyEsc}, true
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}, true
	}

	var params []rune
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			return tea.KeyMsg{}, false
		}
		if (r >= '0' && r <= '9') || r == ';' {
			params = append(params, r)
			continue
		}

		switch r {
		case 'A':
			return tea.KeyMsg{Type: tea.KeyUp}, true
		case 'B':
			return tea.KeyMsg{Type: tea.KeyDown}, true
		case 'C':
			return tea.KeyMsg{Type: tea.KeyRight}, true
		case 'D':
			return tea.KeyMsg{Type: tea.KeyLeft}, true
		case 'H':
			return tea.KeyMsg{Type: tea.KeyHome}, true
		case 'F':
			return tea.KeyMsg{Type: tea.KeyEnd}, true
		case '~':
			switch string(params) {
			case "1", "7":
				return tea.KeyMsg{Type: tea.KeyHome}, true
			case "4", "8":
				return tea.KeyMsg{Type: tea.KeyEnd}, true
			case "3":
				return tea.KeyMsg{Type: tea.KeyDelete}, true
			case "5":
				return tea.KeyMsg{Type: tea.KeyPgUp}, true
			case "6":
				return tea.KeyMsg{Type: tea.KeyPgDown}, true
			}
		}
		return tea.KeyMsg{}, false
	}
}
