// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/tidenote/internal/event"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes the words after the command name.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the editor.
// Every method except Post must be called on the UI goroutine: from
// Initialize, an event handler, a command, or a function passed to Post.
type EditorAPI interface {
	// --- Note Access (Read-Only) ---
	GetBufferText() string
	GetBufferLineCount() int
	GetBufferFilePath() string
	IsBufferModified() bool

	// --- History ---
	HistoryInfo() event.HistoryChangedData

	// --- Persistence ---
	// SaveNote writes the note file and its undo history.
	SaveNote() error

	// --- Scheduling ---
	// Post queues fn to run on the UI goroutine. Safe from any goroutine.
	Post(fn func()) error

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Configuration ---
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Used for
	// subscribing to events and registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
