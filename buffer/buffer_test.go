package buffer

import (
	"math/rand"
	"testing"
)

func TestBuffer_New_IsEmpty(t *testing.T) {
	b := New()
	if got := b.Text(); got != "" {
		t.Fatalf("text: got %q, want %q", got, "")
	}
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor: got %d, want 0", got)
	}
	if !b.IsEmpty() {
		t.Fatalf("expected IsEmpty=true")
	}
	if got := b.String(); got != "" {
		t.Fatalf("string: got %q, want %q", got, "")
	}
}

func TestBuffer_NewWithCursor_KeepsTextAndCursor(t *testing.T) {
	b := NewWithCursor("abcd", 4)
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), 4; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}
	if b.IsEmpty() {
		t.Fatalf("expected IsEmpty=false")
	}
}

func TestBuffer_NewWithCursor_ClampsCursor(t *testing.T) {
	cases := []struct {
		cursor int
		want   int
	}{
		{cursor: -3, want: 0},
		{cursor: 2, want: 2},
		{cursor: 99, want: 4},
	}
	for _, tc := range cases {
		b := NewWithCursor("abcd", tc.cursor)
		if got := b.Cursor(); got != tc.want {
			t.Fatalf("NewWithCursor(%d) cursor: got %d, want %d", tc.cursor, got, tc.want)
		}
	}
}

func TestBuffer_Clear_ResetsTextAndCursor(t *testing.T) {
	b := NewWithCursor("abcd", 4)
	b.Clear()
	if got := b.Text(); got != "" {
		t.Fatalf("text: got %q, want %q", got, "")
	}
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor: got %d, want 0", got)
	}

	v := b.Version()
	b.Clear()
	if got := b.Version(); got != v {
		t.Fatalf("clearing an empty buffer bumped version: got %d, want %d", got, v)
	}
}

func TestBuffer_Versions_TrackEffectiveChanges(t *testing.T) {
	b := New()
	b.Insert('a')
	if got, want := b.Version(), uint64(1); got != want {
		t.Fatalf("version after insert: got %d, want %d", got, want)
	}
	if got, want := b.TextVersion(), uint64(1); got != want {
		t.Fatalf("text version after insert: got %d, want %d", got, want)
	}

	b.CursorLeft()
	if got, want := b.Version(), uint64(2); got != want {
		t.Fatalf("version after move: got %d, want %d", got, want)
	}
	if got, want := b.TextVersion(), uint64(1); got != want {
		t.Fatalf("text version after move: got %d, want %d", got, want)
	}

	b.CursorLeft()
	b.Backspace()
	if got, want := b.Version(), uint64(2); got != want {
		t.Fatalf("version after no-ops: got %d, want %d", got, want)
	}
}

func TestBuffer_RandomOperations_KeepCursorInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New()
	for i := 0; i < 5000; i++ {
		switch rng.Intn(8) {
		case 0, 1:
			b.Insert(rune('a' + rng.Intn(26)))
		case 2:
			b.Delete()
		case 3:
			b.Backspace()
		case 4:
			b.CursorLeft()
		case 5:
			b.CursorRight()
		case 6:
			b.MovePoint(rng.Intn(40) - 10)
		case 7:
			if rng.Intn(50) == 0 {
				b.Clear()
			}
		}
		if c := b.Cursor(); c < 0 || c > b.Len() {
			t.Fatalf("step %d: cursor %d outside [0,%d]", i, c, b.Len())
		}
	}
}
