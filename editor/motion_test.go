package editor

import "testing"

func TestView_VerticalMotion(t *testing.T) {
	cases := []struct {
		name string
		text string
		left int
		down bool
		want string
	}{
		{name: "down to a full row", text: "Testy Wordwrap", left: 11, down: true, want: "<5^1"},
		{name: "down to the last row", text: "Testy Wordwrapmuthar", left: 11, down: true, want: "<3^2"},
		{name: "up from the last row", text: "Testy Wordwrapmuthar", left: 3, want: "<3^1"},
		{name: "up to the prompt row", text: "Testy Wordwrap", left: 5, want: "<3^0"},
		{name: "up clamps to row end", text: "Test Wordwrap", left: 2, want: "<6^0"},
		{name: "up clamps from last column", text: "Test Wordwrap", left: 1, want: "<6^0"},
		{name: "down on one row", text: "Test", down: true, want: ""},
		{name: "down on empty", text: "", down: true, want: ""},
		{name: "up on one row", text: "Test", left: 2, want: ""},
	}
	for _, tc := range cases {
		buf, v, sink := newTestView(tc.text)
		for i := 0; i < tc.left; i++ {
			buf.CursorLeft()
			v.UpdateCursor()
		}
		sink.take()

		before := buf.Cursor()
		var off int
		if tc.down {
			off = v.CursorDown()
		} else {
			off = v.CursorUp()
		}
		if buf.Cursor() != before {
			t.Fatalf("%s: CursorUp/Down moved the buffer cursor", tc.name)
		}
		buf.MovePoint(off)
		v.UpdateCursor()
		if got := sink.take(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestView_HomeEnd(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		left     int
		withLeft bool
		end      bool
		want     string
	}{
		{name: "home on one row", text: "Test", want: "<2^0"},
		{name: "home on wrapped row", text: "Test words", want: "<0^1"},
		{name: "home on prompt row", text: "Test words", left: 6, want: "<2^0"},
		{name: "end on one row", text: "Test", left: 3, withLeft: true, end: true, want: "<5^0<4^0<3^0<6^0"},
		{name: "end on last row", text: "Test words", left: 3, withLeft: true, end: true, want: "<4^1<3^1<2^1<5^1"},
		{name: "end before a wrap", text: "Testy wording", left: 12, end: true, want: "<7^0"},
	}
	for _, tc := range cases {
		buf, v, sink := newTestView(tc.text)
		sink.take()
		for i := 0; i < tc.left; i++ {
			buf.CursorLeft()
			v.UpdateCursor()
		}
		if !tc.withLeft {
			sink.take()
		}
		if tc.end {
			v.CursorEnd()
		} else {
			v.CursorHome()
		}
		if got := sink.take(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestView_ExitEditor_ParksBelowText(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "", want: "<0^1\n"},
		{text: "Test", want: "<0^1\n"},
		{text: "Test of wrapping w/ enter key", want: "<0^5\n"},
	}
	for _, tc := range cases {
		_, v, sink := newTestView(tc.text)
		sink.take()
		v.ExitEditor()
		if got := sink.take(); got != tc.want {
			t.Fatalf("%q: got %q, want %q", tc.text, got, tc.want)
		}
	}
}
