package console

import "github.com/mgregory22/priorities/editor"

// lineSink is an editor.Sink anchored at the console row it was created on.
//
// Moves are relative: down is "\r" plus line feeds, which scroll at the
// bottom of the screen; up is CUU. The column is then set with CR and CUF.
type lineSink struct {
	c *Console

	col, row int
	pending  bool

	// cells holds what the sink has drawn on each row below the first.
	cells map[int][]rune
}

// Sink returns an editor.Sink whose row 0 is the console's current row.
func (c *Console) Sink() editor.Sink {
	return &lineSink{c: c, col: c.col}
}

func (s *lineSink) Width() int { return s.c.width }

func (s *lineSink) CursorColumn() int { return s.col }

func (s *lineSink) Write(str string) {
	for _, r := range str {
		if r == '\n' {
			s.newline()
			continue
		}
		if s.pending {
			s.col, s.row, s.pending = 0, s.row+1, false
		}
		s.c.write(string(r))
		s.put(r)
		s.col++
		if s.col >= s.c.width {
			s.col, s.pending = s.c.width-1, true
		}
	}
	s.c.col = s.col
}

func (s *lineSink) put(r rune) {
	if s.row == 0 {
		return
	}
	if s.cells == nil {
		s.cells = make(map[int][]rune)
	}
	line := s.cells[s.row]
	for len(line) <= s.col {
		line = append(line, ' ')
	}
	line[s.col] = r
	s.cells[s.row] = line
}

// blank reports whether row shows nothing. Rows cleared by writing spaces
// count as blank.
func (s *lineSink) blank(row int) bool {
	for _, r := range s.cells[row] {
		if r != ' ' {
			return false
		}
	}
	return true
}

// newline ends the current line. On a blank row at column 0 the cursor is
// already on a fresh line, so nothing is emitted.
func (s *lineSink) newline() {
	if s.col == 0 && !s.pending && s.row > 0 && s.blank(s.row) {
		return
	}
	s.c.write("\r\n")
	s.col, s.row, s.pending = 0, s.row+1, false
}

func (s *lineSink) MoveTo(col, row int) {
	out := s.c.out
	switch dy := row - s.row; {
	case dy > 0:
		s.c.write("\r")
		for i := 0; i < dy; i++ {
			s.c.write("\n")
		}
	case dy < 0:
		out.CursorUp(-dy)
		s.c.write("\r")
	default:
		s.c.write("\r")
	}
	if col > 0 {
		out.CursorForward(col)
	}
	s.col, s.row, s.pending = col, row, false
	s.c.col = col
}
