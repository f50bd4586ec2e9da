package modehandler

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidenote/internal/input"
	"github.com/bethropolis/tidenote/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer = append(mh.cmdBuffer, actionEvent.Rune)

	case input.ActionDeleteCharBackward:
		if len(mh.cmdBuffer) == 0 {
			mh.leaveCommandMode()
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
			return true
		}
		mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]

	case input.ActionInsertNewLine:
		line := string(mh.cmdBuffer)
		mh.leaveCommandMode()
		if err := mh.runCommand(line); err != nil {
			mh.statusBar.SetTemporaryMessage("Error: %v", err)
		}
		return true

	case input.ActionCancel:
		mh.leaveCommandMode()
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")
		return true

	default:
		return false
	}

	mh.statusBar.SetCommandLine(":" + string(mh.cmdBuffer))
	return true
}

func (mh *ModeHandler) leaveCommandMode() {
	mh.currentMode = ModeNormal
	mh.cmdBuffer = mh.cmdBuffer[:0]
	mh.statusBar.SetCommandLine("")
}

// runCommand parses and runs a command line.
func (mh *ModeHandler) runCommand(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	name, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[name]
	if !exists {
		return fmt.Errorf("unknown command: %s", name)
	}
	logger.Debugf("ModeHandler: Executing command ':%s' with args %v", name, args)
	if err := cmdFunc(args); err != nil {
		return fmt.Errorf("command '%s': %w", name, err)
	}
	return nil
}
