package editor

// Row is one visual row of wrapped text.
type Row struct {
	// Start is the rune offset of the first character on the row.
	Start int
	// Len is the number of runes (and cells) on the row.
	Len int
	// Col is the screen column of the first character.
	Col int
	// Break reports whether the row ends with a newline.
	Break bool
}

func (r Row) end() int { return r.Start + r.Len }

// wrapRows lays text out in rows. The first row begins at promptLen, later
// rows at column 0; every row is at most width columns wide.
//
// Text is placed token by token, a token being a word with its trailing
// spaces (and a newline, if one follows). A token that does not fit moves to
// a new row when it would fit there, and is otherwise split at the row edge.
func wrapRows(text []rune, promptLen, width int) []Row {
	var rows []Row
	start, col, used := 0, promptLen, 0

	flush := func(end int, brk bool) {
		rows = append(rows, Row{Start: start, Len: end - start, Col: col, Break: brk})
		start, col, used = end, 0, 0
	}
	room := func() int { return width - col - used }

	for i := 0; i < len(text); {
		j := tokenEnd(text, i)
		n := j - i

		switch {
		case n <= room():
			used += n
		case used > 0 && n <= width:
			flush(i, false)
			used = n
		default:
			for k := i; k < j; {
				if room() == 0 {
					flush(k, false)
				}
				take := min(room(), j-k)
				used += take
				k += take
			}
		}

		if text[j-1] == '\n' {
			flush(j, true)
		}
		i = j
	}
	if used > 0 {
		flush(len(text), false)
	}
	return rows
}

// tokenEnd returns the offset just past the token starting at i.
func tokenEnd(text []rune, i int) int {
	j := i
	for j < len(text) && text[j] != ' ' && text[j] != '\n' {
		j++
	}
	for j < len(text) && text[j] == ' ' {
		j++
	}
	if j < len(text) && text[j] == '\n' {
		j++
	}
	return j
}

// locate maps a text offset to a screen cell.
//
// An offset equal to the end of a row belongs to the next row. The end of the
// text sits past the last row when that row is full or ends in a newline.
func locate(rows []Row, offset, promptLen, width int) (col, row int) {
	if len(rows) == 0 {
		return promptLen, 0
	}
	for i, r := range rows {
		if offset < r.end() {
			return r.Col + offset - r.Start, i
		}
	}
	last := rows[len(rows)-1]
	if last.Break || last.Col+last.Len >= width {
		return 0, len(rows)
	}
	return last.Col + last.Len, len(rows) - 1
}

// offsetAt maps a cell on row back to a text offset, clamping col into the
// row. endRow is the row that holds the end of the text; only there may the
// column go one past the last character.
func offsetAt(rows []Row, row, col, endRow, textLen int) int {
	if row >= len(rows) {
		return textLen
	}
	r := rows[row]
	maxCol := r.Col + r.Len - 1
	if row == endRow {
		maxCol = r.Col + r.Len
	}
	c := max(r.Col, min(col, maxCol))
	return r.Start + c - r.Col
}

// cells returns what row r looks like on screen. Newlines paint as blanks.
func cells(text []rune, r Row) []rune {
	out := make([]rune, r.Len)
	copy(out, text[r.Start:r.end()])
	for i, c := range out {
		if c == '\n' {
			out[i] = ' '
		}
	}
	return out
}
