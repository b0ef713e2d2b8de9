package editor

// CursorUp returns the text offset one row above the cursor, at the same
// column or the nearest one the row allows. Without a row above it returns
// the cursor offset. The buffer is not changed.
func (v *View) CursorUp() int { return v.verticalOffset(-1) }

// CursorDown is CursorUp for the row below.
func (v *View) CursorDown() int { return v.verticalOffset(1) }

func (v *View) verticalOffset(dr int) int {
	rows := v.layout()
	off := v.buf.Cursor()
	n := v.buf.Len()

	col, row := locate(rows, off, v.promptLen, v.width)
	_, endRow := locate(rows, n, v.promptLen, v.width)

	target := row + dr
	if target < 0 || target > endRow {
		return off
	}
	return offsetAt(rows, target, col, endRow, n)
}

// CursorHome moves the cursor to the start of its visual row.
func (v *View) CursorHome() {
	rows := v.layout()
	_, row := locate(rows, v.buf.Cursor(), v.promptLen, v.width)
	if row < len(rows) {
		v.buf.MovePoint(rows[row].Start)
	} else {
		v.buf.MovePoint(v.buf.Len())
	}
	v.UpdateCursor()
}

// CursorEnd moves the cursor to the end of its visual row: the end of the
// text on the last row, the last character on any other.
func (v *View) CursorEnd() {
	rows := v.layout()
	n := v.buf.Len()
	_, row := locate(rows, v.buf.Cursor(), v.promptLen, v.width)
	_, endRow := locate(rows, n, v.promptLen, v.width)
	if row == endRow {
		v.buf.MovePoint(n)
	} else {
		v.buf.MovePoint(rows[row].end() - 1)
	}
	v.UpdateCursor()
}

// ExitEditor parks the sink cursor on a fresh line below the text.
func (v *View) ExitEditor() {
	last := max(len(v.layout())-1, 0)
	v.sink.MoveTo(0, last+1)
	v.sink.Write("\n")
	v.penCol, v.penRow = 0, last+2
	v.cursorCol, v.cursorRow = 0, last+2
}
