// internal/core/persistence.go
package core

import (
	"fmt"

	"github.com/bethropolis/tidenote/internal/event"
	"github.com/bethropolis/tidenote/internal/logger"
	"github.com/bethropolis/tidenote/internal/prefs"
)

// LoadNote reads the note file into the buffer and starts a fresh history.
// A missing file yields an empty note.
func (e *Editor) LoadNote(path string) error {
	if err := e.buffer.Load(path); err != nil {
		return fmt.Errorf("load note: %w", err)
	}
	e.selection.ClearSelection()
	e.history.Clear()
	e.dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	e.dispatchHistoryChanged()
	return nil
}

// SaveNote writes the note file, then the history under prefix, then
// commits the store. The history is written only after the note is on disk
// so the saved hash always matches a file that exists.
func (e *Editor) SaveNote(store prefs.Store, prefix string) error {
	if err := e.buffer.Save(""); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	e.dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})

	if store == nil {
		return nil
	}
	if err := e.history.Save(store, prefix); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	if err := store.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}
	count := e.history.Log().Len()
	logger.Debugf("Editor: saved %d history entries under '%s'", count, prefix)
	e.dispatch(event.TypeHistorySaved, event.HistorySavedData{Prefix: prefix, Count: count})
	return nil
}

// RestoreHistory loads saved history for the current note. On failure the
// history is left empty and the error is returned and dispatched.
func (e *Editor) RestoreHistory(store prefs.Store, prefix string) error {
	err := e.history.Restore(store, prefix)
	count := e.history.Log().Len()
	if err != nil {
		logger.Warnf("Editor: history restore for '%s' failed, starting empty: %v", prefix, err)
	} else {
		logger.Debugf("Editor: restored %d history entries from '%s'", count, prefix)
	}
	e.dispatch(event.TypeHistoryRestored, event.HistoryRestoredData{Prefix: prefix, Count: count, Err: err})
	e.dispatchHistoryChanged()
	return err
}
