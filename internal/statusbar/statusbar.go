// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleModified  tcell.Style // Style for the modified indicator
	StyleMessage   tcell.Style // Style for temporary messages
	StyleCommand   tcell.Style // Style for the command line
	MessageTimeout time.Duration
	Now            func() time.Time
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleCommand:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
		Now:            time.Now,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	isModified bool
	line, col  int
	charCount  int
	canUndo    bool
	canRedo    bool

	commandLine string // Non-empty while in command mode (includes the prompt)

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &StatusBar{config: config}
}

// SetStyles replaces the bar's styles, keeping the other settings.
func (sb *StatusBar) SetStyles(def, modified, message, command tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config.StyleDefault = def
	sb.config.StyleModified = modified
	sb.config.StyleMessage = message
	sb.config.StyleCommand = command
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the 0-based cursor line and column shown.
func (sb *StatusBar) SetCursorInfo(line, col int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.line, sb.col = line, col
}

// SetCharCount updates the note length shown.
func (sb *StatusBar) SetCharCount(n int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.charCount = n
}

// SetHistoryInfo updates the undo/redo availability indicators.
func (sb *StatusBar) SetHistoryInfo(canUndo, canRedo bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.canUndo, sb.canRedo = canUndo, canRedo
}

// SetCommandLine shows text as the command line; "" leaves command mode.
func (sb *StatusBar) SetCommandLine(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.commandLine = text
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.config.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// defaultText builds the regular status line. Caller holds the lock.
func (sb *StatusBar) defaultText() string {
	name := "[No Name]"
	if sb.filePath != "" {
		name = filepath.Base(sb.filePath)
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	return fmt.Sprintf("%s%s -- Ln %d, Col %d -- %d chars -- undo:%s redo:%s",
		name, modifiedIndicator, sb.line+1, sb.col+1, sb.charCount, onOff(sb.canUndo), onOff(sb.canRedo))
}

// DisplayText returns what the bar would show now and the style for it,
// expiring a stale temporary message on the way.
func (sb *StatusBar) DisplayText() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.commandLine != "" {
		return sb.commandLine, sb.config.StyleCommand
	}

	active := !sb.tempMessageTime.IsZero() && sb.config.Now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if active {
		return sb.tempMessage, sb.config.StyleMessage
	}
	if sb.isModified {
		return sb.defaultText(), sb.config.StyleModified
	}
	return sb.defaultText(), sb.config.StyleDefault
}

// Draw renders the status bar on the last screen row using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	text, style := sb.DisplayText()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
