// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/tidenote/internal/core/history"
	"github.com/bethropolis/tidenote/internal/logger"
	"github.com/bethropolis/tidenote/internal/prefs"
	"github.com/bethropolis/tidenote/internal/theme"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config                     `toml:"logger"`
	Editor  EditorConfig                      `toml:"editor"`
	History HistoryConfig                     `toml:"history"`
	Prefs   PrefsConfig                       `toml:"prefs"`
	Note    NoteConfig                        `toml:"note"`
	Theme   ThemeConfig                       `toml:"theme"`
	Plugins map[string]map[string]interface{} `toml:"plugins"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	SystemClipboard bool `toml:"system_clipboard"`
}

// HistoryConfig tunes undo/redo.
type HistoryConfig struct {
	MaxSize        int           `toml:"max_size"`     // -1 for unbounded
	BatchWindow    time.Duration `toml:"batch_window"` // e.g. "1s", "750ms"
	RestoreOnStart bool          `toml:"restore_on_start"`
	SaveOnQuit     bool          `toml:"save_on_quit"`
}

// PrefsConfig selects where history is persisted.
type PrefsConfig struct {
	Backend string `toml:"backend"` // memory, toml or sqlite
	Path    string `toml:"path"`
	Prefix  string `toml:"prefix"`
}

// NoteConfig locates the note file.
type NoteConfig struct {
	Path string `toml:"path"`
}

// ThemeConfig picks the colour theme.
type ThemeConfig struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"` // Extra *.toml themes, default <data dir>/themes
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			SystemClipboard: SystemClipboard,
		},
		History: HistoryConfig{
			MaxSize:        history.Unbounded,
			BatchWindow:    history.DefaultBatchWindow,
			RestoreOnStart: true,
			SaveOnQuit:     true,
		},
		Prefs: PrefsConfig{
			Backend: DefaultPrefsBackend,
			Prefix:  DefaultPrefsPrefix,
		},
		Theme: ThemeConfig{
			Name: theme.DefaultThemeName,
		},
	}
}

// DataDir is where notes, preferences and logs live by default.
func DataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, AppName)
}

// DefaultConfigPath is the config file read when -config is not given.
func DefaultConfigPath() string {
	return filepath.Join(DataDir(), DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. Keys absent from the file keep the
// values already in cfg. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// Plugin tables are free-form, everything else should be known.
		var unknown []string
		for _, key := range undecoded {
			if len(key) > 0 && key[0] != "plugins" {
				unknown = append(unknown, key.String())
			}
		}
		if len(unknown) > 0 {
			logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, unknown)
		}
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.History.MaxSize < 0 {
		c.History.MaxSize = history.Unbounded
	}
	if c.History.BatchWindow < 0 {
		c.History.BatchWindow = defaults.History.BatchWindow
	}

	c.Prefs.Backend = strings.ToLower(c.Prefs.Backend)
	switch c.Prefs.Backend {
	case prefs.BackendMemory, prefs.BackendTOML, prefs.BackendSQLite:
	default:
		c.Prefs.Backend = defaults.Prefs.Backend
	}
	if c.Prefs.Path == "" {
		switch c.Prefs.Backend {
		case prefs.BackendTOML:
			c.Prefs.Path = filepath.Join(DataDir(), DefaultTOMLPrefsFileName)
		case prefs.BackendSQLite:
			c.Prefs.Path = filepath.Join(DataDir(), DefaultSQLitePrefsFileName)
		}
	}
	if c.Prefs.Prefix == "" {
		c.Prefs.Prefix = defaults.Prefs.Prefix
	}
	if c.Note.Path == "" {
		c.Note.Path = filepath.Join(DataDir(), DefaultNoteFileName)
	}
	if c.Theme.Name == "" {
		c.Theme.Name = defaults.Theme.Name
	}
	if c.Theme.Dir == "" {
		c.Theme.Dir = filepath.Join(DataDir(), DefaultThemesDirName)
	}
}

// Load builds the configuration: defaults, then the config file, then flag
// overrides, then validation. flags may be nil.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}
	loadErr := loadFromFile(cfg, effectivePath)

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()

	return cfg, loadErr
}

// GetPluginConfigValue looks up a key in a plugin's [plugins.<name>] table.
func (c *Config) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	table, ok := c.Plugins[strings.ToLower(pluginName)]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}
