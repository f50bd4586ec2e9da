// internal/buffer/buffer.go
package buffer

import "errors"

// ErrOutOfRange is returned for offsets outside the document.
var ErrOutOfRange = errors.New("offset out of range")

// ChangeListener receives every mutation of a buffer, synchronously, as the
// rune offset of the change plus the verbatim removed and inserted text.
type ChangeListener func(start int, removed, inserted string)

// Buffer defines the text surface the editor and the history work against.
// Offsets are rune indexes into the whole document.
type Buffer interface {
	Load(filePath string) error
	Save(filePath string) error
	FilePath() string
	IsModified() bool

	Text() string
	Len() int
	Slice(start, end int) (string, error)
	ReplaceRange(start, end int, text string) error

	Cursor() int
	SetCursor(offset int)
	LineCol(offset int) (line, col int)
	OffsetAt(line, col int) int

	AddListener(l ChangeListener) (remove func())
}
