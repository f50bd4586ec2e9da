// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidenote/internal/core"
	"github.com/bethropolis/tidenote/internal/event"
	"github.com/bethropolis/tidenote/internal/input"
	"github.com/bethropolis/tidenote/internal/logger"
	"github.com/bethropolis/tidenote/internal/plugin"
	"github.com/bethropolis/tidenote/internal/statusbar"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
)

func (m InputMode) String() string {
	if m == ModeCommand {
		return "COMMAND"
	}
	return "NORMAL"
}

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	saveNote       func() error
	quit           func()

	currentMode InputMode
	cmdBuffer   []rune
	commands    map[string]plugin.CommandFunc
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	SaveNote       func() error // Saves the note and its history
	Quit           func()       // Ends the event loop
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.SaveNote == nil || cfg.Quit == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		saveNote:       cfg.SaveNote,
		quit:           cfg.Quit,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "ModeHandler: %v in %v mode", actionEvent.Action, mh.currentMode)

	switch mh.currentMode {
	case ModeNormal:
		return mh.executeAction(actionEvent)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// RegisterCommand adds a command to the registry. Called via EditorAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// ExecuteCommand runs a command line such as "wc" or "history max 50".
func (mh *ModeHandler) ExecuteCommand(line string) error {
	return mh.runCommand(line)
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the command being typed, empty outside command mode.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}
