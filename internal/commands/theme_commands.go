package commands

import (
	"strings"

	"github.com/bethropolis/tidenote/internal/logger"
	"github.com/bethropolis/tidenote/internal/plugin"
)

// ThemeAPI is what the :theme command needs.
type ThemeAPI interface {
	ListThemes() []string
	CurrentThemeName() string
	SetTheme(name string) error
}

// RegisterThemeCommand registers ":theme" (show the current theme and the
// available ones) and ":theme <name>" (switch).
func RegisterThemeCommand(api plugin.EditorAPI, themes ThemeAPI) {
	err := api.RegisterCommand("theme", func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Theme: %s (available: %s)", themes.CurrentThemeName(), strings.Join(themes.ListThemes(), ", "))
			return nil
		}
		// Theme names may contain spaces.
		name := strings.Join(args, " ")
		if err := themes.SetTheme(name); err != nil {
			return err
		}
		api.SetStatusMessage("Theme set to %s", themes.CurrentThemeName())
		return nil
	})
	if err != nil {
		logger.Warnf("Failed to register ':theme' command: %v", err)
	}
}
