// Package history records reversible text edits and replays them for undo/redo.
//
// Edits arrive as raw change notifications from the text surface, are
// classified as inserts, deletes or replacements, and are coalesced into
// batches so that a burst of typing or backspacing undoes as one step.
package history

import "unicode/utf8"

// ActionType classifies a change notification.
type ActionType int

const (
	NoAction ActionType = iota
	InsertAction
	DeleteAction
	ReplaceAction
)

func (a ActionType) String() string {
	switch a {
	case InsertAction:
		return "insert"
	case DeleteAction:
		return "delete"
	case ReplaceAction:
		return "replace"
	default:
		return "none"
	}
}

// Classify reports the kind of edit described by the removed and inserted text.
// A notification that removes and inserts nothing is NoAction.
func Classify(removed, inserted string) ActionType {
	switch {
	case removed == "" && inserted == "":
		return NoAction
	case removed == "":
		return InsertAction
	case inserted == "":
		return DeleteAction
	default:
		return ReplaceAction
	}
}

// Entry represents a single, reversible text edit.
type Entry struct {
	Start  int    // Rune offset where the edit began
	Before string // Text removed by the edit
	After  string // Text inserted by the edit
}

// valid reports whether the entry can be replayed: a non-negative anchor and
// at least one side of text.
func (e *Entry) valid() bool {
	return e != nil && e.Start >= 0 && (e.Before != "" || e.After != "")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
