package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidenote/internal/buffer"
	"github.com/bethropolis/tidenote/internal/core/history"
	"github.com/bethropolis/tidenote/internal/event"
	"github.com/bethropolis/tidenote/internal/prefs"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestEditor(t *testing.T, text string) (*Editor, *clock, *event.Manager) {
	t.Helper()
	clk := &clock{now: time.Unix(1_700_000_000, 0)}
	em := event.NewManager()
	cfg := Config{
		History:      history.Config{MaxSize: history.Unbounded, BatchWindow: history.DefaultBatchWindow, Now: clk.Now},
		EventManager: em,
	}
	e := NewEditor(buffer.NewRuneBufferFromString(text), cfg)
	t.Cleanup(e.Close)
	return e, clk, em
}

func typeString(t *testing.T, e *Editor, s string) {
	t.Helper()
	for _, r := range s {
		require.NoError(t, e.InsertRune(r))
	}
}

func TestEditor_TypingIsOneUndoStep(t *testing.T) {
	e, clk, _ := newTestEditor(t, "")

	typeString(t, e, "hello")
	clk.Advance(2 * time.Second)
	typeString(t, e, " world")
	require.Equal(t, "hello world", e.GetBuffer().Text())
	require.Equal(t, 2, e.GetHistory().Log().Len())

	undone, err := e.Undo()
	require.NoError(t, err)
	require.True(t, undone)
	require.Equal(t, "hello", e.GetBuffer().Text())
	require.Equal(t, 5, e.Cursor())

	undone, err = e.Undo()
	require.NoError(t, err)
	require.True(t, undone)
	require.Equal(t, "", e.GetBuffer().Text())

	undone, err = e.Undo()
	require.NoError(t, err)
	require.False(t, undone)

	redone, err := e.Redo()
	require.NoError(t, err)
	require.True(t, redone)
	require.Equal(t, "hello", e.GetBuffer().Text())
}

func TestEditor_BackspaceRunCoalesces(t *testing.T) {
	e, _, _ := newTestEditor(t, "abcdef")
	e.GetBuffer().SetCursor(6)

	for i := 0; i < 3; i++ {
		deleted, err := e.DeleteBackward()
		require.NoError(t, err)
		require.True(t, deleted)
	}
	require.Equal(t, "abc", e.GetBuffer().Text())
	require.Equal(t, []history.Entry{{Start: 3, Before: "def", After: ""}}, e.GetHistory().Log().Entries())

	_, err := e.Undo()
	require.NoError(t, err)
	require.Equal(t, "abcdef", e.GetBuffer().Text())
	require.Equal(t, 6, e.Cursor())
}

func TestEditor_TypingOverSelectionIsReplace(t *testing.T) {
	e, _, _ := newTestEditor(t, "hello world")
	e.GetBuffer().SetCursor(6)
	for i := 0; i < 5; i++ {
		e.Move(MotionRight, true)
	}

	require.NoError(t, e.InsertText("there"))
	require.Equal(t, "hello there", e.GetBuffer().Text())
	require.Equal(t, []history.Entry{{Start: 6, Before: "world", After: "there"}}, e.GetHistory().Log().Entries())

	_, err := e.Undo()
	require.NoError(t, err)
	require.Equal(t, "hello world", e.GetBuffer().Text())
	require.Equal(t, 11, e.Cursor())
}

func TestEditor_CutPasteRoundTrip(t *testing.T) {
	e, clk, _ := newTestEditor(t, "one two")
	e.SelectAll()

	cut, err := e.Cut()
	require.NoError(t, err)
	require.True(t, cut)
	require.Equal(t, "", e.GetBuffer().Text())

	clk.Advance(2 * time.Second)
	pasted, err := e.Paste()
	require.NoError(t, err)
	require.True(t, pasted)
	require.Equal(t, "one two", e.GetBuffer().Text())
	require.Equal(t, 2, e.GetHistory().Log().Len())
}

func TestEditor_DispatchesHistoryChanged(t *testing.T) {
	e, _, em := newTestEditor(t, "")

	var seen []event.HistoryChangedData
	em.Subscribe(event.TypeHistoryChanged, func(ev event.Event) bool {
		seen = append(seen, ev.Data.(event.HistoryChangedData))
		return false
	})

	typeString(t, e, "a")
	_, err := e.Undo()
	require.NoError(t, err)
	e.ClearHistory()

	require.Equal(t, []event.HistoryChangedData{
		{CanUndo: true, CanRedo: false, Position: 1, Count: 1},
		{CanUndo: false, CanRedo: true, Position: 0, Count: 1},
		{CanUndo: false, CanRedo: false, Position: 0, Count: 0},
	}, seen)
}

func TestEditor_MaxSizeEvictsOldest(t *testing.T) {
	e, clk, _ := newTestEditor(t, "")
	e.SetHistoryMaxSize(2)

	for _, s := range []string{"a", "b", "c"} {
		typeString(t, e, s)
		clk.Advance(2 * time.Second)
	}
	require.Equal(t, 2, e.GetHistory().Log().Len())

	_, _ = e.Undo()
	_, _ = e.Undo()
	undone, err := e.Undo()
	require.NoError(t, err)
	require.False(t, undone)
	require.Equal(t, "a", e.GetBuffer().Text())
}

func TestEditor_SaveAndRestoreAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	notePath := filepath.Join(dir, "note.txt")
	store := prefs.NewMemoryStore()

	first, clk, _ := newTestEditor(t, "")
	require.NoError(t, first.LoadNote(notePath))
	typeString(t, first, "draft")
	clk.Advance(2 * time.Second)
	typeString(t, first, "!")
	_, err := first.Undo()
	require.NoError(t, err)
	require.NoError(t, first.SaveNote(store, "note"))

	data, err := os.ReadFile(notePath)
	require.NoError(t, err)
	require.Equal(t, "draft", string(data))

	second, _, em := newTestEditor(t, "")
	var restored event.HistoryRestoredData
	em.Subscribe(event.TypeHistoryRestored, func(ev event.Event) bool {
		restored = ev.Data.(event.HistoryRestoredData)
		return false
	})
	require.NoError(t, second.LoadNote(notePath))
	require.NoError(t, second.RestoreHistory(store, "note"))
	require.NoError(t, restored.Err)
	require.Equal(t, 2, restored.Count)

	require.True(t, second.GetHistory().CanRedo())
	_, err = second.Redo()
	require.NoError(t, err)
	require.Equal(t, "draft!", second.GetBuffer().Text())
	_, err = second.Undo()
	require.NoError(t, err)
	_, err = second.Undo()
	require.NoError(t, err)
	require.Equal(t, "", second.GetBuffer().Text())
}

func TestEditor_RestoreRejectsEditedNote(t *testing.T) {
	dir := t.TempDir()
	notePath := filepath.Join(dir, "note.txt")
	store := prefs.NewMemoryStore()

	first, _, _ := newTestEditor(t, "")
	require.NoError(t, first.LoadNote(notePath))
	typeString(t, first, "abc")
	require.NoError(t, first.SaveNote(store, "note"))

	require.NoError(t, os.WriteFile(notePath, []byte("abc edited elsewhere"), 0o644))

	second, _, _ := newTestEditor(t, "")
	require.NoError(t, second.LoadNote(notePath))
	err := second.RestoreHistory(store, "note")
	require.ErrorIs(t, err, history.ErrHashMismatch)
	require.False(t, second.GetHistory().CanUndo())
	require.Equal(t, 0, second.GetHistory().Log().Len())
}

func TestEditor_SaveNoteWithoutPath(t *testing.T) {
	e, _, _ := newTestEditor(t, "text")
	err := e.SaveNote(prefs.NewMemoryStore(), "note")
	require.Error(t, err)
}

func TestEditor_CloseStopsRecording(t *testing.T) {
	e, _, _ := newTestEditor(t, "")
	e.Close()
	require.NoError(t, e.GetBuffer().InsertAtCursor("x"))
	require.False(t, e.GetHistory().CanUndo())
}
