// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/bethropolis/tidenote/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	HistoryMax      *int
	BatchWindow     *time.Duration
	PrefsBackend    *string
	PrefsPath       *string
	NoRestore       *bool
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	DebugLog        *bool
	SystemClipboard *bool
}

// NewFlags defines the command-line flags on a new flag set.
func NewFlags(name string) *Flags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &Flags{fs: fs}
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default %s)", DefaultConfigPath()))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.HistoryMax = fs.Int("history-max", -1, "Maximum undo steps kept, -1 for unbounded - Overrides config file")
	f.BatchWindow = fs.Duration("batch-window", 0, "Window within which same-kind edits merge into one undo step - Overrides config file")
	f.PrefsBackend = fs.String("prefs", "", "History store backend (memory, toml, sqlite) - Overrides config file")
	f.PrefsPath = fs.String("prefs-path", "", "History store file - Overrides config file")
	f.NoRestore = fs.Bool("no-restore", false, "Start with an empty history instead of restoring the saved one")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
	f.SystemClipboard = fs.Bool("system-clipboard", true, "Use the system clipboard instead of an internal one")
	return f
}

// Parse parses args and returns the remaining non-flag arguments (the note path).
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides updates cfg with values from flags that were actually set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "history-max":
			cfg.History.MaxSize = *f.HistoryMax
		case "batch-window":
			if *f.BatchWindow >= 0 {
				cfg.History.BatchWindow = *f.BatchWindow
			}
		case "prefs":
			if *f.PrefsBackend != "" {
				cfg.Prefs.Backend = *f.PrefsBackend
			}
		case "prefs-path":
			cfg.Prefs.Path = *f.PrefsPath
		case "no-restore":
			cfg.History.RestoreOnStart = !*f.NoRestore
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "debug-log":
			cfg.Logger.DebugFilter = *f.DebugLog
		}
	})
}

// splitCommaList splits a comma-separated list, dropping blanks.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
