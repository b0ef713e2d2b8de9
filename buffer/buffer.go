package buffer

// Buffer is the pure line state: text and cursor.
type Buffer struct {
	text   []rune
	cursor int

	version     uint64
	textVersion uint64
}

// New returns an empty buffer with the cursor at 0.
func New() *Buffer {
	return &Buffer{}
}

// NewWithCursor returns a buffer holding text with the cursor clamped into
// [0, len(text)].
func NewWithCursor(text string, cursor int) *Buffer {
	b := &Buffer{text: []rune(text)}
	b.cursor = clampInt(cursor, 0, len(b.text))
	return b
}

func (b *Buffer) Text() string { return string(b.text) }

func (b *Buffer) String() string { return b.Text() }

func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) IsEmpty() bool { return len(b.text) == 0 }

func (b *Buffer) Cursor() int { return b.cursor }

// Version increments on every effective change of text or cursor.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// Clear empties the buffer and resets the cursor.
func (b *Buffer) Clear() {
	if len(b.text) == 0 && b.cursor == 0 {
		return
	}
	b.text = b.text[:0]
	b.cursor = 0
	b.version++
	b.textVersion++
}

func (b *Buffer) setCursor(n int) {
	next := clampInt(n, 0, len(b.text))
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
