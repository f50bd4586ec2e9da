// internal/theme/theme.go
package theme

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidenote/internal/logger"
)

// Style names a theme may define. Anything missing falls back to Default.
const (
	StyleDefault           = "Default"
	StyleLineNumber        = "LineNumber"
	StyleSelection         = "Selection"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarCommand  = "StatusBarCommand"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, or the theme's Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if defStyle, ok := t.Styles[StyleDefault]; ok {
		logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		return defStyle
	}
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// DefaultThemeName is the theme used when none is configured.
const DefaultThemeName = "Tidenote Dark"

func builtinThemes() []*Theme {
	// --- Palette ---
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)

	dark := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	light := tcell.StyleDefault.Background(tcell.NewHexColor(0xfafafa)).Foreground(tcell.NewHexColor(0x383a42))
	lightBar := tcell.StyleDefault.Background(tcell.NewHexColor(0xe5e5e6)).Foreground(tcell.NewHexColor(0x383a42))

	return []*Theme{
		{
			Name:   DefaultThemeName,
			IsDark: true,
			Styles: map[string]tcell.Style{
				StyleDefault:           dark,
				StyleLineNumber:        dark.Foreground(muted),
				StyleSelection:         dark.Reverse(true),
				StyleStatusBar:         tcell.StyleDefault.Background(bg).Foreground(fg),
				StyleStatusBarModified: tcell.StyleDefault.Background(bg).Foreground(yellow),
				StyleStatusBarMessage:  tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true),
				StyleStatusBarCommand:  tcell.StyleDefault.Background(bg).Foreground(green).Bold(true),
			},
		},
		{
			Name: "Tidenote Light",
			Styles: map[string]tcell.Style{
				StyleDefault:           light,
				StyleLineNumber:        light.Foreground(tcell.NewHexColor(0xa0a1a7)),
				StyleSelection:         light.Background(tcell.NewHexColor(0xd7dae0)),
				StyleStatusBar:         lightBar,
				StyleStatusBarModified: lightBar.Foreground(tcell.NewHexColor(0xc18401)),
				StyleStatusBarMessage:  lightBar.Bold(true),
				StyleStatusBarCommand:  lightBar.Foreground(tcell.NewHexColor(0x50a14f)).Bold(true),
			},
		},
	}
}
