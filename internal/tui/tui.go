// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
	style  Style
}

// New creates and initializes a TUI on the real terminal.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s and wraps it. Tests pass a simulation screen.
func NewWithScreen(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	style := DefaultStyle()
	s.SetStyle(style.Default)
	return &TUI{screen: s, style: style}, nil
}

// SetStyle changes the colours used for the document area.
func (t *TUI) SetStyle(style Style) {
	t.style = style
	t.screen.SetStyle(style.Default)
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event, or nil once the screen is finalized.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues ev for PollEvent. Safe from any goroutine.
func (t *TUI) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync repaints the whole terminal, used after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
