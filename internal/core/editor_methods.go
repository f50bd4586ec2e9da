// internal/core/editor_methods.go
package core

import (
	"fmt"

	"github.com/bethropolis/tidenote/internal/logger"
)

// Motion names a cursor movement.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionPageUp
	MotionPageDown
	MotionLineStart
	MotionLineEnd
)

// InsertText types text at the cursor. A selection is replaced in one edit.
func (e *Editor) InsertText(text string) error {
	if start, end, ok := e.selection.Selection(); ok {
		e.selection.ClearSelection()
		if err := e.buffer.ReplaceRange(start, end, text); err != nil {
			return fmt.Errorf("replace selection: %w", err)
		}
		return nil
	}
	return e.buffer.InsertAtCursor(text)
}

// InsertRune types a single rune.
func (e *Editor) InsertRune(r rune) error {
	return e.InsertText(string(r))
}

// DeleteBackward removes the selection, or the rune before the cursor.
func (e *Editor) DeleteBackward() (bool, error) {
	if deleted, err := e.deleteSelection(); deleted || err != nil {
		return deleted, err
	}
	return e.buffer.DeleteBackward()
}

// DeleteForward removes the selection, or the rune under the cursor.
func (e *Editor) DeleteForward() (bool, error) {
	if deleted, err := e.deleteSelection(); deleted || err != nil {
		return deleted, err
	}
	return e.buffer.DeleteForward()
}

func (e *Editor) deleteSelection() (bool, error) {
	start, end, ok := e.selection.Selection()
	if !ok {
		return false, nil
	}
	e.selection.ClearSelection()
	if err := e.buffer.ReplaceRange(start, end, ""); err != nil {
		return false, fmt.Errorf("delete selection: %w", err)
	}
	return true, nil
}

// Move moves the cursor. With extend the selection follows; without it any
// selection is dropped.
func (e *Editor) Move(m Motion, extend bool) {
	if extend {
		e.selection.Begin()
	} else {
		e.selection.ClearSelection()
	}

	switch m {
	case MotionLeft:
		e.buffer.MoveCursor(-1)
	case MotionRight:
		e.buffer.MoveCursor(1)
	case MotionUp:
		e.buffer.MoveLine(-1)
	case MotionDown:
		e.buffer.MoveLine(1)
	case MotionPageUp:
		e.buffer.MoveLine(-e.pageSize)
	case MotionPageDown:
		e.buffer.MoveLine(e.pageSize)
	case MotionLineStart:
		e.buffer.LineStart()
	case MotionLineEnd:
		e.buffer.LineEnd()
	}

	if extend {
		e.selection.Update()
	}
	e.dispatchCursorMoved()
}

// SetPageSize sets how many lines PageUp/PageDown move.
func (e *Editor) SetPageSize(n int) {
	if n > 0 {
		e.pageSize = n
	}
}

// SelectAll selects the whole note.
func (e *Editor) SelectAll() {
	e.selection.SelectAll(e.buffer.Len())
	e.buffer.SetCursor(e.buffer.Len())
	e.dispatchCursorMoved()
}

// Undo reverts the most recent history entry.
func (e *Editor) Undo() (bool, error) {
	e.selection.ClearSelection()
	undone, err := e.history.Undo()
	if err != nil {
		logger.Errorf("Editor: %v", err)
		return false, err
	}
	if undone {
		e.dispatchCursorMoved()
	}
	return undone, nil
}

// Redo reapplies the next history entry.
func (e *Editor) Redo() (bool, error) {
	e.selection.ClearSelection()
	redone, err := e.history.Redo()
	if err != nil {
		logger.Errorf("Editor: %v", err)
		return false, err
	}
	if redone {
		e.dispatchCursorMoved()
	}
	return redone, nil
}

// ClearHistory forgets all undo/redo steps.
func (e *Editor) ClearHistory() {
	e.history.Clear()
	e.dispatchHistoryChanged()
}

// SetHistoryMaxSize bounds the history; negative means unbounded.
func (e *Editor) SetHistoryMaxSize(n int) {
	e.history.SetMaxSize(n)
	e.dispatchHistoryChanged()
}

// Copy copies the selection to the clipboard.
func (e *Editor) Copy() (bool, error) { return e.clipboard.Copy() }

// Cut moves the selection to the clipboard.
func (e *Editor) Cut() (bool, error) { return e.clipboard.Cut() }

// Paste inserts the clipboard, replacing any selection.
func (e *Editor) Paste() (bool, error) { return e.clipboard.Paste() }
