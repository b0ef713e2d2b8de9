package buffer

// Insert puts r at the cursor and advances the cursor past it.
func (b *Buffer) Insert(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
	b.version++
	b.textVersion++
}

// InsertText inserts every rune of s in order, as if typed.
func (b *Buffer) InsertText(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Delete removes the rune under the cursor. It is a no-op at end of text.
func (b *Buffer) Delete() {
	if b.cursor >= len(b.text) {
		return
	}
	b.removeAt(b.cursor)
}

// Backspace removes the rune before the cursor and moves the cursor back.
// It is a no-op at the start of the text.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.cursor--
	b.removeAt(b.cursor)
}

func (b *Buffer) removeAt(i int) {
	copy(b.text[i:], b.text[i+1:])
	b.text = b.text[:len(b.text)-1]
	b.version++
	b.textVersion++
}
