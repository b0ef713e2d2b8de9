package editor

import (
	"strings"

	"github.com/mgregory22/priorities/buffer"
)

// View paints a Buffer on a Sink and keeps the sink cursor on the buffer
// cursor.
//
// A View is bound to one Buffer for one input interaction. It is not safe for
// concurrent use.
type View struct {
	buf  *buffer.Buffer
	sink Sink

	promptLen int
	width     int

	// layout cache, keyed by the buffer's text version
	rows        []Row
	rowsVersion uint64
	rowsValid   bool

	// painted holds the cells written to each row by the last redraw.
	painted [][]rune

	cursorCol, cursorRow int

	// pen is where the sink cursor is. penCol == width means pending wrap.
	penCol, penRow int
}

// NewView binds buf to sink. The prompt must already be on the sink: its
// length is taken from the sink's cursor column. Nothing is drawn until the
// first RedrawEditor.
func NewView(buf *buffer.Buffer, sink Sink) *View {
	promptLen := max(sink.CursorColumn(), 0)
	width := max(sink.Width(), promptLen+1)
	return &View{
		buf:       buf,
		sink:      sink,
		promptLen: promptLen,
		width:     width,
		cursorCol: promptLen,
		penCol:    promptLen,
	}
}

func (v *View) PromptLen() int { return v.promptLen }

func (v *View) Width() int { return v.width }

func (v *View) layout() []Row {
	tv := v.buf.TextVersion()
	if !v.rowsValid || v.rowsVersion != tv {
		v.rows = wrapRows([]rune(v.buf.Text()), v.promptLen, v.width)
		v.rowsVersion = tv
		v.rowsValid = true
	}
	return v.rows
}

// Rows returns the current layout.
func (v *View) Rows() []Row {
	rows := v.layout()
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

// Locate returns the screen cell of text offset off.
func (v *View) Locate(off int) (col, row int) {
	return locate(v.layout(), off, v.promptLen, v.width)
}

// RedrawEditor brings the sink up to date with the buffer, rewriting only the
// rows whose cells changed and, within a row, only from the first changed
// cell. Cells that held text and no longer do are blanked. The sink cursor
// ends on the buffer cursor.
func (v *View) RedrawEditor() {
	text := []rune(v.buf.Text())
	rows := v.layout()

	next := make([][]rune, len(rows))
	for i, r := range rows {
		next[i] = cells(text, r)
	}

	for i := 0; i < max(len(v.painted), len(next)); i++ {
		var was, now []rune
		if i < len(v.painted) {
			was = v.painted[i]
		}
		if i < len(next) {
			now = next[i]
		}
		d := commonPrefix(was, now)
		if d == len(was) && d == len(now) {
			continue
		}

		col := 0
		if i == 0 {
			col = v.promptLen
		}
		v.seek(col+d, i)

		var sb strings.Builder
		sb.WriteString(string(now[d:]))
		if pad := len(was) - len(now); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		v.write(sb.String())
	}
	v.painted = next

	v.place()
}

// UpdateCursor moves the sink cursor to the buffer cursor if it is not
// already there. The text is assumed to be painted.
func (v *View) UpdateCursor() {
	col, row := v.Locate(v.buf.Cursor())
	if col == v.cursorCol && row == v.cursorRow && !v.pending() {
		return
	}
	v.place()
}

func (v *View) pending() bool { return v.penCol >= v.width }

// seek moves the pen to (col, row) unless it is there already or a pending
// wrap will put the next character there.
func (v *View) seek(col, row int) {
	if col == v.penCol && row == v.penRow {
		return
	}
	if v.pending() && col == 0 && row == v.penRow+1 {
		return
	}
	v.sink.MoveTo(col, row)
	v.penCol, v.penRow = col, row
}

func (v *View) write(s string) {
	if s == "" {
		return
	}
	if v.pending() {
		v.penCol, v.penRow = 0, v.penRow+1
	}
	v.sink.Write(s)
	v.penCol += len([]rune(s))
}

// place puts the sink cursor on the buffer cursor. Leaving a pending wrap
// always takes an explicit move.
func (v *View) place() {
	col, row := v.Locate(v.buf.Cursor())
	if v.pending() || col != v.penCol || row != v.penRow {
		v.sink.MoveTo(col, row)
		v.penCol, v.penRow = col, row
	}
	v.cursorCol, v.cursorRow = col, row
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
