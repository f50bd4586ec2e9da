// internal/buffer/rune_buffer.go
package buffer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/tidenote/internal/logger"
)

// RuneBuffer keeps the document as a rune slice so offsets match what the
// history records.
type RuneBuffer struct {
	text     []rune
	cursor   int
	filePath string
	modified bool

	listeners []listenerSlot
	nextID    int
}

type listenerSlot struct {
	id int
	fn ChangeListener
}

var _ Buffer = (*RuneBuffer)(nil)

// NewRuneBuffer creates an empty buffer.
func NewRuneBuffer() *RuneBuffer {
	return &RuneBuffer{}
}

// NewRuneBufferFromString creates a buffer holding text, cursor at the start.
func NewRuneBufferFromString(text string) *RuneBuffer {
	return &RuneBuffer{text: []rune(text)}
}

// Load reads a file into the buffer, replacing its content without notifying
// listeners. A missing file gives an empty buffer bound to that path.
func (b *RuneBuffer) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			b.text = b.text[:0]
			b.cursor = 0
			b.filePath = filePath
			b.modified = false
			logger.Debugf("Buffer: '%s' does not exist, starting empty", filePath)
			return nil
		}
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}

	b.text = []rune(string(data))
	b.cursor = 0
	b.filePath = filePath
	b.modified = false
	logger.Debugf("Buffer: Loaded %d runes from '%s'", len(b.text), filePath)
	return nil
}

// Save writes the buffer to filePath, or to the loaded path when empty.
func (b *RuneBuffer) Save(filePath string) error {
	if filePath == "" {
		filePath = b.filePath
	}
	if filePath == "" {
		return errors.New("no file path to save to")
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for '%s': %w", filePath, err)
		}
	}
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, []byte(string(b.text)), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", tmp, err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		return fmt.Errorf("failed to replace file '%s': %w", filePath, err)
	}

	b.filePath = filePath
	b.modified = false
	logger.Infof("Buffer: Saved %d runes to '%s'", len(b.text), filePath)
	return nil
}

// FilePath returns the path the buffer was loaded from or last saved to.
func (b *RuneBuffer) FilePath() string { return b.filePath }

// IsModified reports unsaved changes.
func (b *RuneBuffer) IsModified() bool { return b.modified }

// Text returns the whole document.
func (b *RuneBuffer) Text() string { return string(b.text) }

// Len returns the document length in runes.
func (b *RuneBuffer) Len() int { return len(b.text) }

// Slice returns the text between two rune offsets.
func (b *RuneBuffer) Slice(start, end int) (string, error) {
	if err := b.checkRange(start, end); err != nil {
		return "", err
	}
	return string(b.text[start:end]), nil
}

func (b *RuneBuffer) checkRange(start, end int) error {
	if start < 0 || end < start || end > len(b.text) {
		return fmt.Errorf("%w: [%d, %d] in document of %d", ErrOutOfRange, start, end, len(b.text))
	}
	return nil
}

// ReplaceRange swaps the runes in [start, end) for text and notifies
// listeners. The cursor follows the edit when it sits after it.
func (b *RuneBuffer) ReplaceRange(start, end int, text string) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	removed := string(b.text[start:end])
	if removed == "" && text == "" {
		return nil
	}
	inserted := []rune(text)

	next := make([]rune, 0, len(b.text)-(end-start)+len(inserted))
	next = append(next, b.text[:start]...)
	next = append(next, inserted...)
	next = append(next, b.text[end:]...)
	b.text = next
	b.modified = true

	switch {
	case b.cursor >= end:
		b.cursor += len(inserted) - (end - start)
	case b.cursor > start:
		b.cursor = start + len(inserted)
	}

	for _, l := range append([]listenerSlot(nil), b.listeners...) {
		l.fn(start, removed, text)
	}
	return nil
}

// Cursor returns the caret's rune offset.
func (b *RuneBuffer) Cursor() int { return b.cursor }

// SetCursor moves the caret, clamped to the document.
func (b *RuneBuffer) SetCursor(offset int) {
	b.cursor = max(0, min(offset, len(b.text)))
}

// LineCol converts a rune offset to a 0-based line and column.
func (b *RuneBuffer) LineCol(offset int) (line, col int) {
	offset = max(0, min(offset, len(b.text)))
	for _, r := range b.text[:offset] {
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// OffsetAt converts a line and column to a rune offset, clamping the column
// to the line's length and the line to the document.
func (b *RuneBuffer) OffsetAt(line, col int) int {
	if line < 0 {
		return 0
	}
	offset := 0
	for l := 0; l < line; l++ {
		for offset < len(b.text) && b.text[offset] != '\n' {
			offset++
		}
		if offset == len(b.text) {
			return offset
		}
		offset++
	}
	for c := 0; c < col && offset < len(b.text) && b.text[offset] != '\n'; c++ {
		offset++
	}
	return offset
}

// AddListener registers l for change notifications. The returned func
// detaches it.
func (b *RuneBuffer) AddListener(l ChangeListener) (remove func()) {
	id := b.nextID
	b.nextID++
	b.listeners = append(b.listeners, listenerSlot{id: id, fn: l})
	return func() {
		for i, slot := range b.listeners {
			if slot.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}
