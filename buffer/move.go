package buffer

// CursorLeft moves the cursor one rune back, stopping at 0.
func (b *Buffer) CursorLeft() { b.setCursor(b.cursor - 1) }

// CursorRight moves the cursor one rune forward, stopping at end of text.
func (b *Buffer) CursorRight() { b.setCursor(b.cursor + 1) }

// RetreatPoint is CursorLeft.
func (b *Buffer) RetreatPoint() { b.CursorLeft() }

// AdvancePoint is CursorRight.
func (b *Buffer) AdvancePoint() { b.CursorRight() }

// MovePoint sets the cursor to n, clamped to [0, Len()].
func (b *Buffer) MovePoint(n int) { b.setCursor(n) }
