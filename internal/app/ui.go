package app

import (
	"github.com/bethropolis/tidenote/internal/config"
	"github.com/bethropolis/tidenote/internal/logger"
	"github.com/bethropolis/tidenote/internal/theme"
	"github.com/bethropolis/tidenote/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	width, height := a.tuiManager.Size()
	viewHeight := height - config.StatusBarHeight
	logger.DebugTagf("draw", "draw: Screen Size (%d x %d), ViewHeight: %d", width, height, viewHeight)
	a.editor.SetPageSize(viewHeight - 1)

	a.view.SelStart, a.view.SelEnd, a.view.HasSel = a.editor.Selection()
	buf := a.editor.GetBuffer()
	a.view.ScrollToCursor(a.tuiManager, buf)

	a.tuiManager.Clear()
	tui.DrawDocument(a.tuiManager, buf, a.view)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(buf.LineCol(buf.Cursor()))
	a.statusBar.SetCharCount(buf.Len())
	info := a.editor.HistoryInfo()
	a.statusBar.SetHistoryInfo(info.CanUndo, info.CanRedo)
}

// SetStatusMessage shows a temporary message in the status bar.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
}

// applyTheme pushes the active theme's styles to the view and status bar.
func (a *App) applyTheme() {
	t := a.themeManager.Current()
	a.tuiManager.SetStyle(tui.Style{
		Default:    t.GetStyle(theme.StyleDefault),
		LineNumber: t.GetStyle(theme.StyleLineNumber),
		Selection:  t.GetStyle(theme.StyleSelection),
	})
	a.statusBar.SetStyles(
		t.GetStyle(theme.StyleStatusBar),
		t.GetStyle(theme.StyleStatusBarModified),
		t.GetStyle(theme.StyleStatusBarMessage),
		t.GetStyle(theme.StyleStatusBarCommand),
	)
}
