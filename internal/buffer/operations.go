package buffer

// Editing helpers used by key handling. Each goes through ReplaceRange so
// listeners see exactly one notification per keystroke.

// InsertAtCursor inserts text at the caret and moves the caret past it.
func (b *RuneBuffer) InsertAtCursor(text string) error {
	at := b.cursor
	if err := b.ReplaceRange(at, at, text); err != nil {
		return err
	}
	b.cursor = at + len([]rune(text))
	return nil
}

// DeleteBackward removes the rune before the caret (Backspace).
func (b *RuneBuffer) DeleteBackward() (bool, error) {
	if b.cursor == 0 {
		return false, nil
	}
	at := b.cursor
	if err := b.ReplaceRange(at-1, at, ""); err != nil {
		return false, err
	}
	b.cursor = at - 1
	return true, nil
}

// DeleteForward removes the rune under the caret (Delete).
func (b *RuneBuffer) DeleteForward() (bool, error) {
	if b.cursor >= len(b.text) {
		return false, nil
	}
	return true, b.ReplaceRange(b.cursor, b.cursor+1, "")
}

// MoveCursor shifts the caret by delta runes.
func (b *RuneBuffer) MoveCursor(delta int) {
	b.SetCursor(b.cursor + delta)
}

// MoveLine moves the caret delta lines up or down, keeping the column where
// the target line is long enough.
func (b *RuneBuffer) MoveLine(delta int) {
	line, col := b.LineCol(b.cursor)
	if line+delta < 0 {
		b.cursor = 0
		return
	}
	b.cursor = b.OffsetAt(line+delta, col)
}

// LineStart moves the caret to the start of its line.
func (b *RuneBuffer) LineStart() {
	line, _ := b.LineCol(b.cursor)
	b.cursor = b.OffsetAt(line, 0)
}

// LineEnd moves the caret to the end of its line.
func (b *RuneBuffer) LineEnd() {
	for b.cursor < len(b.text) && b.text[b.cursor] != '\n' {
		b.cursor++
	}
}

// Lines splits the document on newlines. An empty document has one empty line.
func (b *RuneBuffer) Lines() []string {
	lines := []string{}
	start := 0
	for i, r := range b.text {
		if r == '\n' {
			lines = append(lines, string(b.text[start:i]))
			start = i + 1
		}
	}
	return append(lines, string(b.text[start:]))
}
