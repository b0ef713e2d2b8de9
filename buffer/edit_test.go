package buffer

import "testing"

func TestBuffer_Insert_IntoEmpty(t *testing.T) {
	b := New()
	b.Insert('z')
	if got, want := b.Text(), "z"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), 1; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}
}

func TestBuffer_Insert_AtEnd(t *testing.T) {
	b := NewWithCursor("abcd", 4)
	b.Insert('x')
	if got, want := b.Text(), "abcdx"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestBuffer_Insert_InMiddle(t *testing.T) {
	b := NewWithCursor("abcd", 4)
	b.CursorLeft()
	b.Insert('x')
	if got, want := b.Text(), "abcxd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), 4; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}
}

func TestBuffer_InsertText_TypesEachRune(t *testing.T) {
	b := NewWithCursor("ad", 1)
	b.InsertText("bc")
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), 3; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}
}

func TestBuffer_Backspace_RemovesRuneBeforeCursor(t *testing.T) {
	b := NewWithCursor("abcd", 4)
	b.Backspace()
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), 3; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}

	b.Insert('x')
	if got, want := b.Text(), "abcx"; got != want {
		t.Fatalf("text after reinsert: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), 4; got != want {
		t.Fatalf("cursor after reinsert: got %d, want %d", got, want)
	}
}

func TestBuffer_Delete_RemovesRuneUnderCursor(t *testing.T) {
	b := NewWithCursor("abcd", 1)
	b.Delete()
	if got, want := b.Text(), "acd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), 1; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}
}

func TestBuffer_Edits_AtBoundariesAreNoOps(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		cursor int
		op     func(*Buffer)
	}{
		{name: "backspace on empty", op: (*Buffer).Backspace},
		{name: "delete on empty", op: (*Buffer).Delete},
		{name: "backspace at start", text: "abcd", cursor: 0, op: (*Buffer).Backspace},
		{name: "delete at end", text: "abcd", cursor: 4, op: (*Buffer).Delete},
	}
	for _, tc := range cases {
		b := NewWithCursor(tc.text, tc.cursor)
		v := b.Version()
		tc.op(b)
		if got := b.Text(); got != tc.text {
			t.Fatalf("%s: text got %q, want %q", tc.name, got, tc.text)
		}
		if got := b.Cursor(); got != tc.cursor {
			t.Fatalf("%s: cursor got %d, want %d", tc.name, got, tc.cursor)
		}
		if got := b.Version(); got != v {
			t.Fatalf("%s: version got %d, want %d", tc.name, got, v)
		}
	}
}
