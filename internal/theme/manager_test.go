package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

const paperTheme = `
name = "Paper"

[styles.Default]
fg = "black"
bg = "#ffffff"

[styles.Selection]
reverse = true

[styles.StatusBar]
fg = "navy"
bold = true

[styles.LineNumber]
fg = "not-a-color"
`

func TestParseTheme_InheritsFromDefault(t *testing.T) {
	th, err := ParseTheme(paperTheme)
	require.NoError(t, err)
	require.Equal(t, "Paper", th.Name)

	fg, bg, _ := th.GetStyle(StyleDefault).Decompose()
	require.Equal(t, tcell.ColorBlack, fg)
	require.Equal(t, tcell.NewHexColor(0xffffff), bg)

	fg, bg, attrs := th.GetStyle(StyleStatusBar).Decompose()
	require.Equal(t, tcell.ColorNavy, fg)
	require.Equal(t, tcell.NewHexColor(0xffffff), bg)
	require.NotZero(t, attrs&tcell.AttrBold)

	_, _, attrs = th.GetStyle(StyleSelection).Decompose()
	require.NotZero(t, attrs&tcell.AttrReverse)

	// The bad style is skipped and falls back to Default.
	_, ok := th.Styles[StyleLineNumber]
	require.False(t, ok)
	require.Equal(t, th.GetStyle(StyleDefault), th.GetStyle(StyleLineNumber))
}

func TestParseTheme_BadDefaultFails(t *testing.T) {
	_, err := ParseTheme("[styles.Default]\nfg = \"#12\"\n")
	require.Error(t, err)

	_, err = ParseTheme("name = ")
	require.Error(t, err)
}

func TestManager_LoadsDirAndSwitches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paper.toml"), []byte(paperTheme), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unnamed.toml"), []byte("[styles.Default]\nfg = \"red\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("name = "), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	m := NewManager(dir)
	require.Equal(t, DefaultThemeName, m.Current().Name)
	require.Equal(t, []string{"Paper", "Tidenote Dark", "Tidenote Light", "unnamed"}, m.ListThemes())

	require.NoError(t, m.SetTheme("paper"))
	require.Equal(t, "Paper", m.Current().Name)

	require.Error(t, m.SetTheme("solarized"))
	require.Equal(t, "Paper", m.Current().Name)
}

func TestManager_MissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope"))
	require.Equal(t, []string{"Tidenote Dark", "Tidenote Light"}, m.ListThemes())
	require.NotNil(t, m.Current())
}
