// internal/event/event.go
package event

import "github.com/gdamore/tcell/v2"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // Buffer content changed (typing, paste, undo, redo)
	TypeBufferLoaded   // Note file loaded
	TypeBufferSaved    // Note file saved
	TypeCursorMoved    // Caret moved

	// History events
	TypeHistoryChanged  // Undo/redo availability may have changed
	TypeHistorySaved    // History written to the preferences store
	TypeHistoryRestored // Restore attempted at startup

	// Input
	TypeKeyPressed

	// Lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeHistoryChanged:
		return "HistoryChanged"
	case TypeHistorySaved:
		return "HistorySaved"
	case TypeHistoryRestored:
		return "HistoryRestored"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData mirrors the buffer's change notification.
type BufferModifiedData struct {
	Start    int
	Removed  string
	Inserted string
}

// BufferLoadedData contains info about the loaded note.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved note.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the caret's new rune offset.
type CursorMovedData struct {
	Offset int
}

// HistoryChangedData summarises the undo/redo state.
type HistoryChangedData struct {
	CanUndo  bool
	CanRedo  bool
	Position int
	Count    int
}

// HistorySavedData names the preferences prefix written.
type HistorySavedData struct {
	Prefix string
	Count  int
}

// HistoryRestoredData reports the restore outcome; Err is nil on success.
type HistoryRestoredData struct {
	Prefix string
	Count  int
	Err    error
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData is empty for now.
type AppQuitData struct{}

// AppReadyData is empty for now.
type AppReadyData struct{}
