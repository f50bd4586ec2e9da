package selection

import "github.com/bethropolis/tidenote/internal/logger"

// Manager handles text selection state as a pair of rune offsets.
type Manager struct {
	cursor CursorSource

	selecting bool
	anchor    int // Where Shift+Move started
	head      int // Follows the cursor
}

// CursorSource is what the selection manager needs from the editor.
type CursorSource interface {
	Cursor() int
}

// NewManager creates a new selection manager.
func NewManager(cursor CursorSource) *Manager {
	return &Manager{cursor: cursor, anchor: -1, head: -1}
}

// HasSelection reports a selection with a non-empty range.
func (m *Manager) HasSelection() bool {
	return m.selecting && m.anchor != m.head
}

// Selection returns the normalized range (start <= end). ok is false when
// nothing or an empty range is selected.
func (m *Manager) Selection() (start, end int, ok bool) {
	if !m.HasSelection() {
		return -1, -1, false
	}
	start, end = m.anchor, m.head
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

// ClearSelection resets the selection state.
func (m *Manager) ClearSelection() {
	if m.selecting {
		logger.DebugTagf("core", "Selection Manager: Cleared")
	}
	m.selecting = false
	m.anchor, m.head = -1, -1
}

// Begin anchors a selection at the cursor unless one is in progress.
// Call it before moving the cursor with Shift held.
func (m *Manager) Begin() {
	if m.selecting {
		return
	}
	m.anchor = m.cursor.Cursor()
	m.head = m.anchor
	m.selecting = true
	logger.DebugTagf("core", "Selection Manager: Started at %d", m.anchor)
}

// Update moves the selection head to the cursor. Call it after the move.
func (m *Manager) Update() {
	if m.selecting {
		m.head = m.cursor.Cursor()
	}
}

// SelectAll anchors at 0 and extends to length.
func (m *Manager) SelectAll(length int) {
	m.selecting = true
	m.anchor, m.head = 0, length
}
