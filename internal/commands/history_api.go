package commands

import "github.com/bethropolis/tidenote/internal/event"

// HistoryAPI is the part of the editor the built-in commands drive beyond
// what plugins may touch.
type HistoryAPI interface {
	Undo() (bool, error)
	Redo() (bool, error)
	ClearHistory()
	SetHistoryMaxSize(n int)
	HistoryMaxSize() int
	HistoryInfo() event.HistoryChangedData
	RequestQuit()
}
