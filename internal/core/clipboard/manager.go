// Package clipboard implements copy, cut and paste against the note buffer,
// backed by the system clipboard with an in-process fallback.
package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/tidenote/internal/logger"
)

// EditorInterface defines what the clipboard needs from the editor.
type EditorInterface interface {
	Slice(start, end int) (string, error)
	ReplaceRange(start, end int, text string) error
	Cursor() int
	Selection() (start, end int, ok bool)
	ClearSelection()
}

// Backend is a place clipboard text lives.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return sysclip.ReadAll() }
func (systemBackend) WriteAll(text string) error { return sysclip.WriteAll(text) }

// SystemBackend returns the OS clipboard, or nil when no clipboard utility
// is available (e.g. a headless session without xclip or wl-clipboard).
func SystemBackend() Backend {
	if sysclip.Unsupported {
		return nil
	}
	return systemBackend{}
}

// Manager handles clipboard operations.
type Manager struct {
	editor   EditorInterface
	system   Backend // nil when disabled or unsupported
	internal string  // Last copied text, used when the system clipboard fails
}

// NewManager creates a clipboard manager. Pass a nil system backend to keep
// everything in-process.
func NewManager(editor EditorInterface, system Backend) *Manager {
	return &Manager{editor: editor, system: system}
}

func (m *Manager) store(text string) {
	m.internal = text
	if m.system == nil {
		return
	}
	if err := m.system.WriteAll(text); err != nil {
		logger.Warnf("ClipboardManager: system clipboard write failed, keeping text internally: %v", err)
	}
}

func (m *Manager) load() string {
	if m.system != nil {
		text, err := m.system.ReadAll()
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			logger.Warnf("ClipboardManager: system clipboard read failed: %v", err)
		}
	}
	return m.internal
}

// Copy puts the selected text on the clipboard.
func (m *Manager) Copy() (bool, error) {
	start, end, ok := m.editor.Selection()
	if !ok {
		return false, nil
	}
	text, err := m.editor.Slice(start, end)
	if err != nil {
		return false, fmt.Errorf("failed to extract selected text for copy: %w", err)
	}
	m.store(text)
	logger.Debugf("ClipboardManager: Copied %d bytes", len(text))
	return true, nil
}

// Cut copies the selection and deletes it from the buffer.
func (m *Manager) Cut() (bool, error) {
	start, end, ok := m.editor.Selection()
	if !ok {
		return false, nil
	}
	copied, err := m.Copy()
	if !copied || err != nil {
		return copied, err
	}
	m.editor.ClearSelection()
	if err := m.editor.ReplaceRange(start, end, ""); err != nil {
		return false, fmt.Errorf("failed to delete selection on cut: %w", err)
	}
	return true, nil
}

// Paste inserts clipboard text at the cursor, replacing the selection when
// there is one. It is a single buffer edit either way.
func (m *Manager) Paste() (bool, error) {
	text := m.load()
	if text == "" {
		return false, nil
	}

	start, end, ok := m.editor.Selection()
	if !ok {
		start = m.editor.Cursor()
		end = start
	}
	m.editor.ClearSelection()

	if err := m.editor.ReplaceRange(start, end, text); err != nil {
		return false, fmt.Errorf("buffer replace failed during paste: %w", err)
	}
	logger.Debugf("ClipboardManager: Pasted %d bytes at %d", len(text), start)
	return true, nil
}
