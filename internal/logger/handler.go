package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler to drop records by tag, package
// or file.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{baseHandler: base, cfg: cfg}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

func foundInSet(set map[string]struct{}, key string) bool {
	if set == nil {
		return false
	}
	_, found := set[key]
	return found
}

// allowed applies a disabled set, then an enabled set, to one key.
func allowed(key string, enabled, disabled map[string]struct{}) bool {
	key = strings.ToLower(key)
	if foundInSet(disabled, key) {
		return false
	}
	if enabled != nil && !foundInSet(enabled, key) {
		return false
	}
	return true
}

// recordSource returns the package directory and file name of the record's caller.
func recordSource(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

func recordTag(r slog.Record) (string, bool) {
	var tag string
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			found = true
			return false
		}
		return true
	})
	return tag, found
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	if pkg, file, ok := recordSource(r); ok {
		if !allowed(pkg, h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet) {
			h.trace("package %q filtered: %s", pkg, r.Message)
			return nil
		}
		if !allowed(file, h.cfg.enabledFilesSet, h.cfg.disabledFilesSet) {
			h.trace("file %q filtered: %s", file, r.Message)
			return nil
		}
	}

	if tag, ok := recordTag(r); ok {
		if !allowed(tag, h.cfg.enabledTagsSet, h.cfg.disabledTagsSet) {
			h.trace("tag %q filtered: %s", tag, r.Message)
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		h.trace("untagged message filtered: %s", r.Message)
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

func (h *filteringHandler) trace(format string, args ...interface{}) {
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
	}
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
