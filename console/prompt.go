package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotNumber   = errors.New("not a number")
	ErrOutOfBounds = errors.New("out of range")
)

// prompt is the shared ask loop: print the message, read a line, validate,
// and on failure report the error and ask again with the rejected text
// pre-filled.
type prompt struct {
	Message string
}

func (p prompt) ask(c *Console, initial string, validate func(string) error) (string, error) {
	text := initial
	for {
		c.Print(renderLines(c.style.Prompt, p.Message))
		line, err := c.ReadLine(text)
		if err != nil {
			return "", err
		}
		if err := validate(line); err != nil {
			c.Println(c.style.Error.Render(err.Error()))
			text = line
			continue
		}
		return line, nil
	}
}

// StringPrompt accepts any text, blank included.
type StringPrompt struct {
	prompt
}

func NewStringPrompt(msg string) StringPrompt {
	return StringPrompt{prompt{Message: msg}}
}

// Ask reads a line starting from initial.
func (p StringPrompt) Ask(c *Console, initial string) (string, error) {
	return p.ask(c, initial, func(string) error { return nil })
}

// IntPrompt accepts a blank line or an integer in [Min, Max].
type IntPrompt struct {
	prompt
	Min, Max int
}

func NewIntPrompt(msg string, min, max int) IntPrompt {
	return IntPrompt{prompt: prompt{Message: msg}, Min: min, Max: max}
}

// Ask reads a number. ok is false when the line was left blank.
func (p IntPrompt) Ask(c *Console) (n int, ok bool, err error) {
	line, err := p.ask(c, "", p.validate)
	if err != nil {
		return 0, false, err
	}
	s := strings.TrimSpace(line)
	if s == "" {
		return 0, false, nil
	}
	n, _ = strconv.Atoi(s)
	return n, true, nil
}

func (p IntPrompt) validate(line string) error {
	s := strings.TrimSpace(line)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q: %w", s, ErrNotNumber)
	}
	if n < p.Min || n > p.Max {
		return fmt.Errorf("%d is %w, expected %d to %d", n, ErrOutOfBounds, p.Min, p.Max)
	}
	return nil
}

// AskString prints msg and reads a line pre-filled with initial.
func (c *Console) AskString(msg, initial string) (string, error) {
	return NewStringPrompt(msg).Ask(c, initial)
}

// AskInt prints msg and reads a number in [min, max]. ok is false on a blank
// line.
func (c *Console) AskInt(msg string, min, max int) (int, bool, error) {
	return NewIntPrompt(msg, min, max).Ask(c)
}
