// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionCancel

	// --- Control Keys ---
	// tcell reports these as dedicated keys; the Ctrl modifier is stripped in ProcessEvent.
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll
	p.keymap[tcell.KeyCtrlP] = ActionEnterCommandMode

	// --- Shift + Movement extends the selection ---
	shiftMap := make(Keymap)
	shiftMap[tcell.KeyUp] = ActionSelectUp
	shiftMap[tcell.KeyDown] = ActionSelectDown
	shiftMap[tcell.KeyLeft] = ActionSelectLeft
	shiftMap[tcell.KeyRight] = ActionSelectRight
	shiftMap[tcell.KeyHome] = ActionSelectHome
	shiftMap[tcell.KeyEnd] = ActionSelectEnd
	p.modKeymap[tcell.ModShift] = shiftMap
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// The app decides what the action means in command mode.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// 1. Modifier + Key combinations
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// KeyCtrlA..KeyCtrlZ already imply Ctrl (this range covers Enter, Tab and Backspace).
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Simple Key mappings
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Printable runes (Shift is part of the rune itself)
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
