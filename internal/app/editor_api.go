// internal/app/editor_api.go
package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidenote/internal/commands"
	"github.com/bethropolis/tidenote/internal/event"
	"github.com/bethropolis/tidenote/internal/plugin"
)

var (
	_ plugin.EditorAPI    = (*appEditorAPI)(nil)
	_ commands.HistoryAPI = (*appEditorAPI)(nil)
	_ commands.ThemeAPI   = (*appEditorAPI)(nil)
)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Note Access ---

func (api *appEditorAPI) GetBufferText() string {
	return api.app.editor.GetBuffer().Text()
}

func (api *appEditorAPI) GetBufferLineCount() int {
	return len(api.app.editor.GetBuffer().Lines())
}

func (api *appEditorAPI) GetBufferFilePath() string {
	return api.app.editor.GetBuffer().FilePath()
}

func (api *appEditorAPI) IsBufferModified() bool {
	return api.app.editor.GetBuffer().IsModified()
}

// --- History ---

func (api *appEditorAPI) HistoryInfo() event.HistoryChangedData {
	return api.app.editor.HistoryInfo()
}

func (api *appEditorAPI) Undo() (bool, error) { return api.app.editor.Undo() }

func (api *appEditorAPI) Redo() (bool, error) { return api.app.editor.Redo() }

func (api *appEditorAPI) ClearHistory() { api.app.editor.ClearHistory() }

func (api *appEditorAPI) SetHistoryMaxSize(n int) { api.app.editor.SetHistoryMaxSize(n) }

func (api *appEditorAPI) HistoryMaxSize() int {
	return api.app.editor.GetHistory().Log().MaxSize()
}

// --- Persistence / Lifecycle ---

func (api *appEditorAPI) SaveNote() error {
	return api.app.saveNote()
}

func (api *appEditorAPI) RequestQuit() {
	api.app.requestQuit()
}

// Post wraps fn in an interrupt event; the UI loop runs it.
func (api *appEditorAPI) Post(fn func()) error {
	return api.app.tuiManager.PostEvent(tcell.NewEventInterrupt(fn))
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.SetStatusMessage(format, args...)
}

// --- Theme ---

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

func (api *appEditorAPI) CurrentThemeName() string {
	return api.app.themeManager.Current().Name
}

func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	api.app.applyTheme()
	return nil
}

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.GetPluginConfigValue(pluginName, key)
}
