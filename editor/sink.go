package editor

// Sink is the character-cell surface a View paints on.
//
// Rows are relative to the row the prompt was printed on. Writing into the
// last column leaves the sink in a pending-wrap state: the next written
// character lands at column 0 of the following row.
type Sink interface {
	// Write prints s at the current position.
	Write(s string)
	// MoveTo positions the cursor at col on row.
	MoveTo(col, row int)
	// Width is the number of columns per row.
	Width() int
	// CursorColumn is the current column, read once to learn the prompt length.
	CursorColumn() int
}
