// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	logLevel      = new(slog.LevelVar)

	// debugFilter traces the filtering handler's decisions to stderr.
	debugFilter bool
)

func init() {
	logLevel.Set(slog.LevelInfo)
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
}

func handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
}

// Init installs an unfiltered text logger writing to output.
func Init(level slog.Level, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	logLevel.Set(level)
	install(slog.NewTextHandler(output, handlerOptions()))
}

// Setup installs a logger from cfg. It returns a closer for the log file, if
// one was opened; the caller closes it on exit.
func Setup(cfg Config) (io.Closer, error) {
	cfg.process()
	debugFilter = cfg.DebugFilter

	var output io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	switch cfg.LogFilePath {
	case "":
	case "-":
		output = os.Stderr
	default:
		f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
		}
		output, closer = f, f
	}

	logLevel.Set(cfg.level.Level())
	base := slog.NewTextHandler(output, handlerOptions())
	install(newFilteringHandler(base, &cfg))

	Infof("Logger initialized at level %s", cfg.level.Level())
	return closer, nil
}

func install(h slog.Handler) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = slog.New(h)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// logAtLevel creates and logs a record at the specified level, capturing the correct caller source.
func logAtLevel(level slog.Level, attrs []slog.Attr, format string, args ...interface{}) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}

	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, nil, format, args...)
}

// DebugTagf logs a debug message carrying a tag that filters can match on.
func DebugTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, []slog.Attr{slog.String(tagKey, tag)}, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, nil, format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, nil, format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, nil, format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, nil, format, args...)
	os.Exit(1)
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	logLevel.Set(level)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}
