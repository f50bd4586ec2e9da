// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/tidenote/internal/logger"
)

// Manager holds loaded themes and the active one.
type Manager struct {
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
}

// NewManager loads the built-in themes plus every .toml file in themesDir
// (which may be empty or missing) and activates DefaultThemeName.
func NewManager(themesDir string) *Manager {
	m := &Manager{themes: make(map[string]*Theme)}
	for _, t := range builtinThemes() {
		m.add(t)
	}
	if themesDir != "" {
		if err := m.LoadThemesFromDir(themesDir); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}
	m.activeTheme = m.themes[strings.ToLower(DefaultThemeName)]
	return m
}

func (m *Manager) add(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// LoadThemesFromDir loads every .toml file in dir. A missing directory is
// not an error.
func (m *Manager) LoadThemesFromDir(dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("Theme directory '%s' does not exist. No custom themes loaded.", dir)
			return nil
		}
		return fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	loaded := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		path := filepath.Join(dir, file.Name())
		t, err := LoadThemeFromFile(path)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", path, err)
			continue
		}
		m.add(t)
		loaded++
	}
	logger.Infof("Loaded %d custom themes from '%s'.", loaded, dir)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	return m.activeTheme
}

// SetTheme activates a theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	t, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	m.activeTheme = t
	logger.Infof("Active theme set to: %s", t.Name)
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
