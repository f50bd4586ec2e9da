// internal/core/editor.go
package core

import (
	"github.com/bethropolis/tidenote/internal/buffer"
	"github.com/bethropolis/tidenote/internal/core/clipboard"
	"github.com/bethropolis/tidenote/internal/core/history"
	"github.com/bethropolis/tidenote/internal/core/selection"
	"github.com/bethropolis/tidenote/internal/event"
	"github.com/bethropolis/tidenote/internal/logger"
)

// Config holds the editor's collaborators and tunables.
type Config struct {
	History      history.Config
	Clipboard    clipboard.Backend // nil keeps the clipboard in-process
	EventManager *event.Manager    // nil disables event dispatch
	PageSize     int               // Lines moved by PageUp/PageDown
}

// Editor owns the note buffer and everything that acts on it.
type Editor struct {
	buffer       *buffer.RuneBuffer
	history      *history.Controller
	selection    *selection.Manager
	clipboard    *clipboard.Manager
	eventManager *event.Manager
	pageSize     int

	detach []func()
}

// NewEditor wires a history controller, selection and clipboard to buf.
// The history listener is registered before the event listener so that
// subscribers of BufferModified observe the updated history.
func NewEditor(buf *buffer.RuneBuffer, cfg Config) *Editor {
	e := &Editor{
		buffer:       buf,
		history:      history.NewController(buf, cfg.History),
		eventManager: cfg.EventManager,
		pageSize:     cfg.PageSize,
	}
	if e.pageSize <= 0 {
		e.pageSize = 20
	}
	e.selection = selection.NewManager(buf)
	e.clipboard = clipboard.NewManager(e, cfg.Clipboard)

	e.detach = append(e.detach,
		buf.AddListener(e.history.TextChanged),
		buf.AddListener(e.bufferChanged),
	)
	return e
}

// Close detaches the editor's listeners from the buffer. The buffer keeps
// its text; further edits are no longer recorded.
func (e *Editor) Close() {
	for _, d := range e.detach {
		d()
	}
	e.detach = nil
}

func (e *Editor) bufferChanged(start int, removed, inserted string) {
	logger.DebugTagf("core", "Editor: change at %d (-%d +%d bytes), recording=%v",
		start, len(removed), len(inserted), e.history.Capturing())
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Start: start, Removed: removed, Inserted: inserted})
	e.dispatchHistoryChanged()
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

func (e *Editor) dispatchHistoryChanged() {
	e.dispatch(event.TypeHistoryChanged, e.HistoryInfo())
}

func (e *Editor) dispatchCursorMoved() {
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{Offset: e.buffer.Cursor()})
}

// GetBuffer returns the note buffer.
func (e *Editor) GetBuffer() *buffer.RuneBuffer { return e.buffer }

// GetHistory returns the history controller.
func (e *Editor) GetHistory() *history.Controller { return e.history }

// GetEventManager returns the event bus, possibly nil.
func (e *Editor) GetEventManager() *event.Manager { return e.eventManager }

// HistoryInfo summarises undo/redo availability.
func (e *Editor) HistoryInfo() event.HistoryChangedData {
	log := e.history.Log()
	return event.HistoryChangedData{
		CanUndo:  e.history.CanUndo(),
		CanRedo:  e.history.CanRedo(),
		Position: log.Position(),
		Count:    log.Len(),
	}
}

// --- clipboard.EditorInterface ---

// Slice returns buffer text between two rune offsets.
func (e *Editor) Slice(start, end int) (string, error) { return e.buffer.Slice(start, end) }

// ReplaceRange edits the buffer; the change is recorded like any other.
func (e *Editor) ReplaceRange(start, end int, text string) error {
	return e.buffer.ReplaceRange(start, end, text)
}

// Cursor returns the caret's rune offset.
func (e *Editor) Cursor() int { return e.buffer.Cursor() }

// Selection returns the normalized selection, if any.
func (e *Editor) Selection() (start, end int, ok bool) { return e.selection.Selection() }

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() { e.selection.ClearSelection() }
