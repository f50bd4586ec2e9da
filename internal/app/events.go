package app

import (
	"github.com/bethropolis/tidenote/internal/event"
	"github.com/bethropolis/tidenote/internal/logger"
)

func (a *App) subscribeCoreEvents() {
	a.eventManager.Subscribe(event.TypeHistoryRestored, a.handleHistoryRestored)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
}

// handleHistoryRestored reports the outcome of the startup restore.
func (a *App) handleHistoryRestored(e event.Event) bool {
	data, ok := e.Data.(event.HistoryRestoredData)
	if !ok {
		logger.Warnf("App: HistoryRestored event with unexpected data type: %T", e.Data)
		return false
	}
	if data.Err != nil {
		a.SetStatusMessage("Undo history discarded: %v", data.Err)
	} else if data.Count > 0 {
		a.SetStatusMessage("Restored %d undo steps", data.Count)
	}
	return false
}

// handleBufferLoaded resets the viewport for the new note.
func (a *App) handleBufferLoaded(e event.Event) bool {
	a.view.TopLine, a.view.LeftCol = 0, 0
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		logger.Infof("App: loaded note '%s'", data.FilePath)
	}
	return false
}
