// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit           // Save note and history, then exit
	ActionSave           // Save note and history
	ActionCancel         // Esc: drop selection or leave command mode

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Clipboard / Selection ---
	ActionCopy
	ActionCut
	ActionPaste
	ActionSelectAll

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Selection Movement (Shift+Move) ---
	ActionSelectUp
	ActionSelectDown
	ActionSelectLeft
	ActionSelectRight
	ActionSelectHome
	ActionSelectEnd

	// --- Text Manipulation ---
	ActionInsertRune // Requires Rune argument
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key

	// --- Command line ---
	ActionEnterCommandMode
)

var actionNames = map[Action]string{
	ActionQuit:               "quit",
	ActionSave:               "save",
	ActionCancel:             "cancel",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionCopy:               "copy",
	ActionCut:                "cut",
	ActionPaste:              "paste",
	ActionSelectAll:          "select-all",
	ActionMoveUp:             "move-up",
	ActionMoveDown:           "move-down",
	ActionMoveLeft:           "move-left",
	ActionMoveRight:          "move-right",
	ActionMovePageUp:         "page-up",
	ActionMovePageDown:       "page-down",
	ActionMoveHome:           "move-home",
	ActionMoveEnd:            "move-end",
	ActionSelectUp:           "select-up",
	ActionSelectDown:         "select-down",
	ActionSelectLeft:         "select-left",
	ActionSelectRight:        "select-right",
	ActionSelectHome:         "select-home",
	ActionSelectEnd:          "select-end",
	ActionInsertRune:         "insert-rune",
	ActionInsertNewLine:      "newline",
	ActionInsertTab:          "tab",
	ActionDeleteCharForward:  "delete",
	ActionDeleteCharBackward: "backspace",
	ActionEnterCommandMode:   "command",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// IsSelectionMove reports whether the action extends the selection.
func (a Action) IsSelectionMove() bool {
	return a >= ActionSelectUp && a <= ActionSelectEnd
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
