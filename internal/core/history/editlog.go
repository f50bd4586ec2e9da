package history

import "fmt"

// Unbounded disables the size limit of an EditLog.
const Unbounded = -1

// EditLog is an ordered record of edits plus the number of them currently
// applied. Entries before position can be undone, entries from position on
// can be redone.
type EditLog struct {
	entries  []*Entry
	position int
	maxSize  int
}

// NewEditLog creates an empty, unbounded log.
func NewEditLog() *EditLog {
	return &EditLog{maxSize: Unbounded}
}

// Push appends an entry, discarding any redoable entries first.
func (l *EditLog) Push(e *Entry) {
	if l.position < len(l.entries) {
		clear(l.entries[l.position:])
		l.entries = l.entries[:l.position]
	}
	l.entries = append(l.entries, e)
	l.position++

	if l.maxSize >= 0 {
		l.Trim()
	}
}

// Trim evicts the oldest entries until the log fits in its size limit.
func (l *EditLog) Trim() {
	if l.maxSize < 0 {
		return
	}
	if excess := len(l.entries) - l.maxSize; excess > 0 {
		clear(l.entries[:excess])
		l.entries = l.entries[excess:]
		l.position -= excess
	}
	if l.position < 0 {
		l.position = 0
	}
}

// SetMaxSize changes the size limit. A negative size means unbounded.
func (l *EditLog) SetMaxSize(n int) {
	if n < 0 {
		n = Unbounded
	}
	l.maxSize = n
	l.Trim()
}

// MaxSize returns the size limit, or Unbounded.
func (l *EditLog) MaxSize() int {
	return l.maxSize
}

// Current returns the most recently applied entry without moving the position.
func (l *EditLog) Current() *Entry {
	if l.position == 0 {
		return nil
	}
	return l.entries[l.position-1]
}

// StepBack moves the position back one entry and returns the entry to undo.
func (l *EditLog) StepBack() *Entry {
	if l.position == 0 {
		return nil
	}
	l.position--
	return l.entries[l.position]
}

// StepForward returns the entry to redo and moves the position past it.
func (l *EditLog) StepForward() *Entry {
	if l.position >= len(l.entries) {
		return nil
	}
	e := l.entries[l.position]
	l.position++
	return e
}

// Clear drops every entry.
func (l *EditLog) Clear() {
	clear(l.entries)
	l.entries = l.entries[:0]
	l.position = 0
}

// Len returns the number of entries, applied or not.
func (l *EditLog) Len() int {
	return len(l.entries)
}

// Position returns the number of applied entries.
func (l *EditLog) Position() int {
	return l.position
}

// Entries returns a copy of the log's entries in chronological order.
func (l *EditLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = *e
	}
	return out
}

// setPosition overwrites the position; only Restore needs this.
func (l *EditLog) setPosition(p int) error {
	if p < 0 || p > len(l.entries) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidPosition, p, len(l.entries))
	}
	l.position = p
	return nil
}
