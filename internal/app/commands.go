package app

import "github.com/bethropolis/tidenote/internal/commands"

// registerAppCommands registers built-in commands like :w, :history and :theme.
func registerAppCommands(a *App) {
	commands.RegisterAppCommands(a.editorAPI, a.editorAPI)
	commands.RegisterThemeCommand(a.editorAPI, a.editorAPI)
}
