package config

import "time"

// Base application details
const AppName = "tidenote"
const Version = "0.3.0"
const DefaultConfigFileName = "config.toml"
const DefaultNoteFileName = "note.txt"
const DefaultLogFileName = "tidenote.log"
const DefaultThemesDirName = "themes"

// History persistence
const DefaultPrefsPrefix = "note"
const DefaultPrefsBackend = "toml"
const DefaultTOMLPrefsFileName = "prefs.toml"
const DefaultSQLitePrefsFileName = "prefs.db"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

const DefaultTabWidth = 4
const SystemClipboard = true
