package console

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgregory22/priorities/buffer"
	"github.com/mgregory22/priorities/editor"
)

// ReadLine edits a line after whatever is already printed on the current
// row and returns it when enter is pressed. initial is pre-filled with the
// cursor at its end.
//
// Esc returns ErrCancelled and ctrl+c ErrInterrupted. In every case the
// cursor is left on a fresh line below the text.
func (c *Console) ReadLine(initial string) (string, error) {
	buf := buffer.NewWithCursor(initial, len([]rune(initial)))
	v := editor.NewView(buf, c.Sink())
	v.RedrawEditor()

	km := c.keys
	for {
		msg, err := c.ReadKey()
		if err != nil {
			v.ExitEditor()
			return buf.Text(), err
		}

		tv := buf.TextVersion()
		switch {
		case key.Matches(msg, km.Enter):
			v.ExitEditor()
			return buf.Text(), nil
		case key.Matches(msg, km.Cancel):
			v.ExitEditor()
			return "", ErrCancelled
		case key.Matches(msg, km.Interrupt):
			v.ExitEditor()
			return "", ErrInterrupted

		case key.Matches(msg, km.Left):
			buf.CursorLeft()
		case key.Matches(msg, km.Right):
			buf.CursorRight()
		case key.Matches(msg, km.Up):
			buf.MovePoint(v.CursorUp())
		case key.Matches(msg, km.Down):
			buf.MovePoint(v.CursorDown())
		case key.Matches(msg, km.Home):
			v.CursorHome()
			continue
		case key.Matches(msg, km.End):
			v.CursorEnd()
			continue

		case key.Matches(msg, km.Backspace):
			buf.Backspace()
		case key.Matches(msg, km.Delete):
			buf.Delete()
		case key.Matches(msg, km.Clear):
			buf.Clear()

		case msg.Type == tea.KeyRunes && !msg.Alt:
			buf.InsertText(string(msg.Runes))
		case msg.Type == tea.KeySpace:
			buf.Insert(' ')
		default:
			continue
		}

		if buf.TextVersion() != tv {
			v.RedrawEditor()
		} else {
			v.UpdateCursor()
		}
	}
}
