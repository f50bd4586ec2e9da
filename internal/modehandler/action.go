package modehandler

import (
	"github.com/bethropolis/tidenote/internal/core"
	"github.com/bethropolis/tidenote/internal/input"
	"github.com/bethropolis/tidenote/internal/logger"
)

var motions = map[input.Action]core.Motion{
	input.ActionMoveUp:       core.MotionUp,
	input.ActionMoveDown:     core.MotionDown,
	input.ActionMoveLeft:     core.MotionLeft,
	input.ActionMoveRight:    core.MotionRight,
	input.ActionMovePageUp:   core.MotionPageUp,
	input.ActionMovePageDown: core.MotionPageDown,
	input.ActionMoveHome:     core.MotionLineStart,
	input.ActionMoveEnd:      core.MotionLineEnd,
	input.ActionSelectUp:     core.MotionUp,
	input.ActionSelectDown:   core.MotionDown,
	input.ActionSelectLeft:   core.MotionLeft,
	input.ActionSelectRight:  core.MotionRight,
	input.ActionSelectHome:   core.MotionLineStart,
	input.ActionSelectEnd:    core.MotionLineEnd,
}

// executeAction handles actions in ModeNormal. It returns whether a redraw
// is needed.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	action := actionEvent.Action

	if m, ok := motions[action]; ok {
		mh.editor.Move(m, action.IsSelectionMove())
		return true
	}

	var err error
	switch action {
	case input.ActionEnterCommandMode:
		mh.editor.ClearSelection()
		mh.currentMode = ModeCommand
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.SetCommandLine(":")
		logger.Debugf("ModeHandler: Entering Command Mode")

	case input.ActionCancel:
		mh.editor.ClearSelection()
		mh.statusBar.ResetTemporaryMessage()

	case input.ActionQuit:
		mh.quit()

	case input.ActionSave:
		mh.editor.ClearSelection()
		mh.save()

	case input.ActionUndo:
		var undone bool
		if undone, err = mh.editor.Undo(); err == nil && !undone {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}

	case input.ActionRedo:
		var redone bool
		if redone, err = mh.editor.Redo(); err == nil && !redone {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	case input.ActionCopy:
		var copied bool
		if copied, err = mh.editor.Copy(); err == nil && copied {
			mh.statusBar.SetTemporaryMessage("Copied")
		}

	case input.ActionCut:
		_, err = mh.editor.Cut()

	case input.ActionPaste:
		_, err = mh.editor.Paste()

	case input.ActionSelectAll:
		mh.editor.SelectAll()

	case input.ActionInsertRune:
		err = mh.editor.InsertRune(actionEvent.Rune)

	case input.ActionInsertNewLine:
		err = mh.editor.InsertRune('\n')

	case input.ActionInsertTab:
		err = mh.editor.InsertRune('\t')

	case input.ActionDeleteCharBackward:
		_, err = mh.editor.DeleteBackward()

	case input.ActionDeleteCharForward:
		_, err = mh.editor.DeleteForward()

	default:
		return false
	}

	if err != nil {
		logger.Errorf("ModeHandler: %v failed: %v", action, err)
		mh.statusBar.SetTemporaryMessage("%v failed: %v", action, err)
	}
	return true
}

func (mh *ModeHandler) save() {
	if err := mh.saveNote(); err != nil {
		logger.Errorf("ModeHandler: save failed: %v", err)
		mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		return
	}
	mh.statusBar.SetTemporaryMessage("Saved %s", mh.editor.GetBuffer().FilePath())
}
