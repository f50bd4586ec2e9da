// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidenote/internal/buffer"
	"github.com/bethropolis/tidenote/internal/config"
	"github.com/bethropolis/tidenote/internal/core"
	"github.com/bethropolis/tidenote/internal/core/clipboard"
	"github.com/bethropolis/tidenote/internal/core/history"
	"github.com/bethropolis/tidenote/internal/event"
	"github.com/bethropolis/tidenote/internal/input"
	"github.com/bethropolis/tidenote/internal/logger"
	"github.com/bethropolis/tidenote/internal/modehandler"
	"github.com/bethropolis/tidenote/internal/plugin"
	"github.com/bethropolis/tidenote/internal/prefs"
	"github.com/bethropolis/tidenote/internal/statusbar"
	"github.com/bethropolis/tidenote/internal/theme"
	"github.com/bethropolis/tidenote/internal/tui"
)

// Options carries what NewApp needs besides configuration. The zero value
// uses the real terminal and clock.
type Options struct {
	Screen tcell.Screen     // nil for the terminal
	Now    func() time.Time // clock for history batching
}

// App encapsulates the core components and main loop of the editor.
// All editor state is touched only from the goroutine running Run.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	view          *tui.View
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	editorAPI     *appEditorAPI
	store         prefs.Store

	quitting bool
}

// NewApp creates the application, loads the note and restores its history.
func NewApp(cfg *config.Config, opts Options) (*App, error) {
	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen)
	} else {
		tuiManager, err = tui.New()
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	store, storeErr := prefs.Open(cfg.Prefs.Backend, cfg.Prefs.Path)
	if storeErr != nil {
		logger.Errorf("App: opening %s store '%s' failed, history will not persist: %v", cfg.Prefs.Backend, cfg.Prefs.Path, storeErr)
		store = prefs.NewMemoryStore()
	}

	var clip clipboard.Backend
	if cfg.Editor.SystemClipboard {
		clip = clipboard.SystemBackend()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	eventManager := event.NewManager()
	statusBar := statusbar.New(statusbar.DefaultConfig())
	editor := core.NewEditor(buffer.NewRuneBuffer(), core.Config{
		History: history.Config{
			MaxSize:     cfg.History.MaxSize,
			BatchWindow: cfg.History.BatchWindow,
			Now:         now,
		},
		Clipboard:    clip,
		EventManager: eventManager,
	})

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		view:          &tui.View{TabWidth: cfg.Editor.TabWidth, StatusRows: config.StatusBarHeight},
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  theme.NewManager(cfg.Theme.Dir),
		store:         store,
	}
	if err := a.themeManager.SetTheme(cfg.Theme.Name); err != nil {
		logger.Warnf("App: %v, using %s", err, a.themeManager.Current().Name)
		statusBar.SetTemporaryMessage("Theme: %v", err)
	}
	a.applyTheme()

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		SaveNote:       a.saveNote,
		Quit:           a.requestQuit,
	})
	a.editorAPI = newEditorAPI(a)

	a.subscribeCoreEvents()
	registerAppCommands(a)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	if failed := a.pluginManager.InitializePlugins(a.editorAPI); len(failed) > 0 {
		statusBar.SetTemporaryMessage("Plugins failed to load: %v", failed)
	}

	if err := editor.LoadNote(cfg.Note.Path); err != nil {
		a.close()
		return nil, err
	}
	if storeErr != nil {
		statusBar.SetTemporaryMessage("History store unavailable: %v", storeErr)
	} else if cfg.History.RestoreOnStart {
		// Failures are reported through TypeHistoryRestored.
		_ = editor.RestoreHistory(store, cfg.Prefs.Prefix)
	}

	return a, nil
}

// Run starts the application's event loop. It returns once the user quits
// or the screen is finalized.
func (a *App) Run() error {
	defer a.close()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.draw()

	for !a.quitting {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			break
		}
		if a.handleEvent(ev) {
			a.draw()
		}
	}

	a.pluginManager.ShutdownPlugins()
	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})

	if a.cfg.History.SaveOnQuit {
		if err := a.saveNote(); err != nil {
			logger.Errorf("App: save on quit failed: %v", err)
			return fmt.Errorf("save on quit: %w", err)
		}
	} else if a.editor.GetBuffer().IsModified() {
		logger.Warnf("App: Exited with unsaved changes.")
	}
	logger.Infof("App: Exiting application.")
	return nil
}

// handleEvent processes one tcell event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	case *tcell.EventInterrupt:
		fn, ok := ev.Data().(func())
		if !ok {
			logger.Warnf("App: ignoring interrupt with data %T", ev.Data())
			return false
		}
		fn()
		return true
	}
	return false
}

// saveNote writes the note and its history, then commits the store.
func (a *App) saveNote() error {
	return a.editor.SaveNote(a.store, a.cfg.Prefs.Prefix)
}

func (a *App) requestQuit() {
	logger.Debugf("App: quit requested")
	a.quitting = true
}

func (a *App) close() {
	a.editor.Close()
	if err := a.store.Close(); err != nil {
		logger.Warnf("App: closing store: %v", err)
	}
	a.tuiManager.Close()
}
