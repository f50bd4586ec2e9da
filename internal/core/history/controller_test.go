package history

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		removed, inserted string
		want              ActionType
	}{
		{"", "a", InsertAction},
		{"a", "", DeleteAction},
		{"a", "b", ReplaceAction},
		{"", "", NoAction},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.removed, tt.inserted))
		})
	}
}

func TestController_TypingWithinWindowCoalesces(t *testing.T) {
	c, s, clock := newTestController("")

	s.typeAt(t, 0, "a")
	clock.advance(300 * time.Millisecond)
	s.typeAt(t, 1, "b")
	clock.advance(300 * time.Millisecond)
	s.typeAt(t, 2, "c")

	require.Equal(t, []Entry{{Start: 0, After: "abc"}}, c.Log().Entries())
	require.Equal(t, 1, c.Log().Position())
}

func TestController_TypingAfterWindowSplits(t *testing.T) {
	c, s, clock := newTestController("")

	s.typeAt(t, 0, "a")
	clock.advance(100 * time.Millisecond)
	s.typeAt(t, 1, "b")
	clock.advance(1001 * time.Millisecond)
	s.typeAt(t, 2, "c")

	require.Equal(t, []Entry{{Start: 0, After: "ab"}, {Start: 2, After: "c"}}, c.Log().Entries())
}

func TestController_WindowBoundaryIsInclusive(t *testing.T) {
	c, s, clock := newTestController("")

	s.typeAt(t, 0, "a")
	clock.advance(DefaultBatchWindow)
	s.typeAt(t, 1, "b")

	require.Equal(t, 1, c.Log().Len())
}

func TestController_BackspaceCoalescesLeftward(t *testing.T) {
	c, s, clock := newTestController("hello")

	s.backspace(t, 5)
	clock.advance(200 * time.Millisecond)
	s.backspace(t, 4)
	clock.advance(200 * time.Millisecond)
	s.backspace(t, 3)

	require.Equal(t, "he", s.Text())
	require.Equal(t, []Entry{{Start: 2, Before: "llo"}}, c.Log().Entries())

	ok, err := c.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hello", s.Text())
	require.Equal(t, 5, s.cursor)
}

func TestController_ReplaceAlwaysStartsNewEntry(t *testing.T) {
	c, s, clock := newTestController("abc")

	require.NoError(t, s.ReplaceRange(0, 1, "X"))
	clock.advance(10 * time.Millisecond)
	require.NoError(t, s.ReplaceRange(1, 2, "Y"))

	require.Equal(t, []Entry{
		{Start: 0, Before: "a", After: "X"},
		{Start: 1, Before: "b", After: "Y"},
	}, c.Log().Entries())
}

func TestController_KindChangeStartsNewEntry(t *testing.T) {
	c, s, clock := newTestController("")

	s.typeAt(t, 0, "ab")
	clock.advance(10 * time.Millisecond)
	s.backspace(t, 2)
	clock.advance(10 * time.Millisecond)
	s.typeAt(t, 1, "c")

	require.Equal(t, "ac", s.Text())
	require.Equal(t, 3, c.Log().Len())
}

func TestController_NonContiguousInsertStartsNewEntry(t *testing.T) {
	c, s, clock := newTestController("hello")

	s.typeAt(t, 5, "!")
	clock.advance(10 * time.Millisecond)
	s.typeAt(t, 0, ">")

	require.Equal(t, 2, c.Log().Len())

	_, err := c.Undo()
	require.NoError(t, err)
	_, err = c.Undo()
	require.NoError(t, err)
	require.Equal(t, "hello", s.Text())
}

func TestController_EmptyNotificationIgnored(t *testing.T) {
	c, _, _ := newTestController("x")
	c.TextChanged(0, "", "")
	require.Equal(t, 0, c.Log().Len())
	require.False(t, c.CanUndo())
}

func TestController_UndoRedoCursor(t *testing.T) {
	c, s, _ := newTestController("world")

	s.typeAt(t, 0, "hello ")
	require.Equal(t, "hello world", s.Text())

	ok, err := c.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "world", s.Text())
	require.Equal(t, 0, s.cursor)
	require.True(t, c.CanRedo())
	require.False(t, c.CanUndo())

	ok, err = c.Redo()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hello world", s.Text())
	require.Equal(t, 6, s.cursor)
	require.False(t, c.CanRedo())
}

func TestController_ReplaceUndoRedo(t *testing.T) {
	c, s, _ := newTestController("the cat sat")

	require.NoError(t, s.ReplaceRange(4, 7, "dog"))
	require.Equal(t, "the dog sat", s.Text())

	_, err := c.Undo()
	require.NoError(t, err)
	require.Equal(t, "the cat sat", s.Text())
	require.Equal(t, 7, s.cursor)

	_, err = c.Redo()
	require.NoError(t, err)
	require.Equal(t, "the dog sat", s.Text())
	require.Equal(t, 7, s.cursor)
}

func TestController_UndoDoesNotRecordItsOwnEdit(t *testing.T) {
	c, s, _ := newTestController("")

	s.typeAt(t, 0, "abc")
	_, err := c.Undo()
	require.NoError(t, err)
	_, err = c.Redo()
	require.NoError(t, err)

	require.Equal(t, 1, c.Log().Len())
	require.Equal(t, 1, c.Log().Position())
	require.True(t, c.Capturing())
}

func TestController_NoOpGuards(t *testing.T) {
	c, s, _ := newTestController("text")

	ok, err := c.Undo()
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = c.Redo()
	require.NoError(t, err)
	require.False(t, ok)

	require.Equal(t, "text", s.Text())
}

func TestController_ClearDisablesUndo(t *testing.T) {
	c, s, _ := newTestController("")
	s.typeAt(t, 0, "abc")
	require.True(t, c.CanUndo())

	c.Clear()

	require.False(t, c.CanUndo())
	require.False(t, c.CanRedo())
	ok, err := c.Undo()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "abc", s.Text())
}

func TestController_TypingAfterUndoStartsNewBranch(t *testing.T) {
	c, s, clock := newTestController("")

	s.typeAt(t, 0, "a")
	clock.advance(1500 * time.Millisecond)
	s.typeAt(t, 1, "b")
	_, err := c.Undo()
	require.NoError(t, err)
	require.Equal(t, "a", s.Text())

	clock.advance(10 * time.Millisecond)
	s.typeAt(t, 1, "c")

	require.Equal(t, []Entry{{Start: 0, After: "a"}, {Start: 1, After: "c"}}, c.Log().Entries())
	require.False(t, c.CanRedo())
}

func TestController_FailedReplaceRevertsStepAndReleasesGuard(t *testing.T) {
	c, s, _ := newTestController("")
	s.typeAt(t, 0, "abc")

	s.fail = errors.New("surface gone")
	ok, err := c.Undo()
	require.Error(t, err)
	require.False(t, ok)
	require.Equal(t, 1, c.Log().Position())
	require.True(t, c.Capturing())

	s.fail = nil
	_, err = c.Undo()
	require.NoError(t, err)
	s.fail = errors.New("surface gone")
	ok, err = c.Redo()
	require.Error(t, err)
	require.False(t, ok)
	require.Equal(t, 0, c.Log().Position())
	require.True(t, c.Capturing())
}

func TestController_SuspendCaptureNests(t *testing.T) {
	c, s, _ := newTestController("")

	outer := c.suspendCapture()
	inner := c.suspendCapture()
	s.typeAt(t, 0, "x")
	inner()
	inner()
	require.False(t, c.Capturing())
	outer()
	require.True(t, c.Capturing())

	require.Equal(t, 0, c.Log().Len())
}

func TestController_MultibyteOffsets(t *testing.T) {
	c, s, clock := newTestController("añb")

	s.typeAt(t, 2, "é")
	clock.advance(10 * time.Millisecond)
	s.typeAt(t, 3, "ü")
	require.Equal(t, "añéüb", s.Text())

	_, err := c.Undo()
	require.NoError(t, err)
	require.Equal(t, "añb", s.Text())
	require.Equal(t, 2, s.cursor)
}

func TestController_SetMaxSize(t *testing.T) {
	c, s, clock := newTestController("")
	for i := 0; i < 5; i++ {
		s.typeAt(t, i, "x")
		clock.advance(2 * time.Second)
	}
	require.Equal(t, 5, c.Log().Len())

	c.SetMaxSize(2)
	require.Equal(t, 2, c.Log().Len())
	require.Equal(t, 2, c.Log().Position())
}

// TestController_RandomEditsRoundTrip applies random edit sequences and checks
// that undoing everything restores the original text and that each redo
// restores the text seen before the matching undo.
func TestController_RandomEditsRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		const initial = "the quick brown fox"
		c, s, clock := newTestController(initial)

		cursor := len([]rune(initial))
		for i := 0; i < 40; i++ {
			n := len(s.text)
			switch op := rng.Intn(6); {
			case op < 3:
				if rng.Intn(4) == 0 {
					cursor = rng.Intn(n + 1)
				}
				s.typeAt(t, cursor, string(rune('a'+rng.Intn(26))))
				cursor++
			case op < 5:
				if cursor > 0 {
					s.backspace(t, cursor)
					cursor--
				}
			default:
				if n > 0 {
					start := rng.Intn(n)
					end := start + 1 + rng.Intn(min(3, n-start))
					require.NoError(t, s.ReplaceRange(start, end, "ZZ"))
					cursor = start + 2
				}
			}
			clock.advance(time.Duration(rng.Intn(1500)) * time.Millisecond)
		}
		final := s.Text()

		var snapshots []string
		for c.CanUndo() {
			snapshots = append(snapshots, s.Text())
			_, err := c.Undo()
			require.NoError(t, err)
		}
		require.Equal(t, initial, s.Text(), "seed %d", seed)

		for i := len(snapshots) - 1; i >= 0; i-- {
			_, err := c.Redo()
			require.NoError(t, err)
			require.Equal(t, snapshots[i], s.Text(), "seed %d redo %d", seed, i)
		}
		require.Equal(t, final, s.Text())
	}
}
