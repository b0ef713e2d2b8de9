package console

import "testing"

func TestLineSink_MovesAreRelative(t *testing.T) {
	c, out := newTestConsole("", 8)
	c.Print("> ")
	s := c.Sink()
	if got, want := s.CursorColumn(), 2; got != want {
		t.Fatalf("cursor column: got %d, want %d", got, want)
	}

	s.Write("Word w")
	s.MoveTo(0, 1)
	s.MoveTo(7, 0)
	s.Write(" ")
	s.MoveTo(3, 0)

	want := "> Word w" + "\r\n" + "\x1b[1A\r\x1b[7C" + " " + "\r\x1b[3C"
	if got := out.String(); got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}
}

func TestLineSink_PendingWrapLandsOnNextRow(t *testing.T) {
	c, out := newTestConsole("", 4)
	s := c.Sink().(*lineSink)
	s.Write("abcd")
	if !s.pending || s.col != 3 || s.row != 0 {
		t.Fatalf("after full row: col=%d row=%d pending=%v", s.col, s.row, s.pending)
	}
	s.Write("e")
	if s.pending || s.col != 1 || s.row != 1 {
		t.Fatalf("after wrap: col=%d row=%d pending=%v", s.col, s.row, s.pending)
	}
	if got, want := out.String(), "abcde"; got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}
}

func TestLineSink_NewlineOnFreshRowIsAbsorbed(t *testing.T) {
	c, out := newTestConsole("", 8)
	s := c.Sink()
	s.Write("ab")
	s.MoveTo(0, 1)
	s.Write("\n")
	if got, want := out.String(), "ab\r\n"; got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}

	out.Reset()
	s.Write("\n")
	if got, want := out.String(), ""; got != want {
		t.Fatalf("second newline: got %q, want %q", got, want)
	}

	c2, out2 := newTestConsole("", 8)
	s2 := c2.Sink()
	s2.Write("ab")
	s2.Write("\n")
	if got, want := out2.String(), "ab\r\n"; got != want {
		t.Fatalf("newline after text: got %q, want %q", got, want)
	}
}

func TestLineSink_NewlineOnClearedRowIsAbsorbed(t *testing.T) {
	c, out := newTestConsole("", 4)
	s := c.Sink()
	s.Write("abcdef")
	s.MoveTo(0, 1)
	s.Write("  ")
	s.MoveTo(0, 1)
	out.Reset()

	s.Write("\n")
	if got, want := out.String(), ""; got != want {
		t.Fatalf("newline on cleared row: got %q, want %q", got, want)
	}

	s.Write("x")
	s.MoveTo(0, 1)
	out.Reset()
	s.Write("\n")
	if got, want := out.String(), "\r\n"; got != want {
		t.Fatalf("newline on row with text: got %q, want %q", got, want)
	}
}
