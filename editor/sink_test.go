package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mgregory22/priorities/buffer"
)

// recordingSink logs writes verbatim and moves as "<col^row".
type recordingSink struct {
	width int
	col   int
	out   strings.Builder
}

func (s *recordingSink) Write(str string) {
	s.out.WriteString(str)
	s.col += utf8.RuneCountInString(str)
}

func (s *recordingSink) MoveTo(col, row int) {
	fmt.Fprintf(&s.out, "<%d^%d", col, row)
	s.col = col
}

func (s *recordingSink) Width() int        { return s.width }
func (s *recordingSink) CursorColumn() int { return s.col }

func (s *recordingSink) take() string {
	out := s.out.String()
	s.out.Reset()
	return out
}

// screenSink emulates a terminal grid with deferred wrapping.
type screenSink struct {
	width    int
	grid     map[int][]rune
	col, row int
	pending  bool
}

func newScreenSink(width int) *screenSink {
	return &screenSink{width: width, grid: map[int][]rune{}}
}

func (s *screenSink) line(row int) []rune {
	l, ok := s.grid[row]
	if !ok {
		l = []rune(strings.Repeat(" ", s.width))
		s.grid[row] = l
	}
	return l
}

func (s *screenSink) Write(str string) {
	for _, r := range str {
		if s.pending {
			s.col, s.row, s.pending = 0, s.row+1, false
		}
		s.line(s.row)[s.col] = r
		s.col++
		if s.col == s.width {
			s.col, s.pending = s.width-1, true
		}
	}
}

func (s *screenSink) MoveTo(col, row int) {
	s.col, s.row, s.pending = col, row, false
}

func (s *screenSink) Width() int { return s.width }

func (s *screenSink) CursorColumn() int {
	if s.pending {
		return s.width
	}
	return s.col
}

func newTestView(text string) (*buffer.Buffer, *View, *recordingSink) {
	sink := &recordingSink{width: 8}
	sink.Write("> ")
	buf := buffer.New()
	v := NewView(buf, sink)
	typeText(buf, v, text)
	return buf, v, sink
}

func typeText(buf *buffer.Buffer, v *View, text string) {
	for _, r := range text {
		buf.Insert(r)
		v.RedrawEditor()
	}
}
