package commands

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeThemes struct {
	names   []string
	current string
}

func (f *fakeThemes) ListThemes() []string     { return f.names }
func (f *fakeThemes) CurrentThemeName() string { return f.current }
func (f *fakeThemes) SetTheme(name string) error {
	for _, n := range f.names {
		if n == name {
			f.current = n
			return nil
		}
	}
	return fmt.Errorf("theme '%s' not found", name)
}

func TestThemeCommand(t *testing.T) {
	api := &fakeAPI{}
	themes := &fakeThemes{names: []string{"Paper", "Tidenote Dark"}, current: "Tidenote Dark"}
	RegisterThemeCommand(api, themes)
	cmd := api.commands["theme"]
	require.NotNil(t, cmd)

	require.NoError(t, cmd(nil))
	require.Equal(t, "Theme: Tidenote Dark (available: Paper, Tidenote Dark)", api.status)

	require.NoError(t, cmd([]string{"Paper"}))
	require.Equal(t, "Paper", themes.current)
	require.Equal(t, "Theme set to Paper", api.status)

	require.NoError(t, cmd([]string{"Tidenote", "Dark"}))
	require.Equal(t, "Tidenote Dark", themes.current)

	require.Error(t, cmd([]string{"solarized"}))
	require.Equal(t, "Tidenote Dark", themes.current)
}
