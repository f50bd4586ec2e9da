package history

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func entry(s string) *Entry {
	return &Entry{Start: 0, After: s}
}

func afters(l *EditLog) []string {
	var out []string
	for _, e := range l.Entries() {
		out = append(out, e.After)
	}
	return out
}

func TestEditLog_Empty(t *testing.T) {
	l := NewEditLog()
	require.Equal(t, 0, l.Len())
	require.Equal(t, 0, l.Position())
	require.Equal(t, Unbounded, l.MaxSize())
	require.Nil(t, l.Current())
	require.Nil(t, l.StepBack())
	require.Nil(t, l.StepForward())
}

func TestEditLog_PushAndStep(t *testing.T) {
	l := NewEditLog()
	a, b := entry("a"), entry("b")
	l.Push(a)
	l.Push(b)

	require.Equal(t, 2, l.Position())
	require.Same(t, b, l.Current())

	require.Same(t, b, l.StepBack())
	require.Equal(t, 1, l.Position())
	require.Same(t, a, l.Current())

	require.Same(t, a, l.StepBack())
	require.Nil(t, l.StepBack())
	require.Equal(t, 0, l.Position())

	require.Same(t, a, l.StepForward())
	require.Same(t, b, l.StepForward())
	require.Nil(t, l.StepForward())
	require.Equal(t, 2, l.Position())
}

func TestEditLog_PushDiscardsRedoBranch(t *testing.T) {
	l := NewEditLog()
	l.Push(entry("A"))
	l.Push(entry("B"))
	l.Push(entry("C"))
	l.StepBack()
	l.StepBack()
	require.Equal(t, 1, l.Position())

	l.Push(entry("D"))

	require.Equal(t, []string{"A", "D"}, afters(l))
	require.Equal(t, 2, l.Position())
	require.Nil(t, l.StepForward())
}

func TestEditLog_SetMaxSizeTrimsOldest(t *testing.T) {
	tests := []struct {
		name         string
		undos        int
		wantPosition int
	}{
		{"position at end", 0, 2},
		{"position reduced by three", 1, 1},
		{"position clamped", 3, 0},
		{"position already zero", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewEditLog()
			for _, s := range []string{"1", "2", "3", "4", "5"} {
				l.Push(entry(s))
			}
			for i := 0; i < tt.undos; i++ {
				l.StepBack()
			}

			l.SetMaxSize(2)

			require.Equal(t, []string{"4", "5"}, afters(l))
			require.Equal(t, tt.wantPosition, l.Position())
		})
	}
}

func TestEditLog_PushRespectsMaxSize(t *testing.T) {
	l := NewEditLog()
	l.SetMaxSize(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l.Push(entry(s))
		require.LessOrEqual(t, l.Len(), 3)
	}
	require.Equal(t, []string{"c", "d", "e"}, afters(l))
	require.Equal(t, 3, l.Position())
}

func TestEditLog_MaxSizeZero(t *testing.T) {
	l := NewEditLog()
	l.SetMaxSize(0)
	l.Push(entry("a"))
	require.Equal(t, 0, l.Len())
	require.Equal(t, 0, l.Position())
	require.Nil(t, l.Current())
}

func TestEditLog_NegativeMaxSizeIsUnbounded(t *testing.T) {
	l := NewEditLog()
	l.SetMaxSize(-7)
	require.Equal(t, Unbounded, l.MaxSize())
	for i := 0; i < 50; i++ {
		l.Push(entry("x"))
	}
	require.Equal(t, 50, l.Len())
}

func TestEditLog_Clear(t *testing.T) {
	l := NewEditLog()
	l.Push(entry("a"))
	l.Push(entry("b"))
	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Equal(t, 0, l.Position())
	require.Nil(t, l.Current())
}

func TestEditLog_SetPositionBounds(t *testing.T) {
	l := NewEditLog()
	l.Push(entry("a"))
	l.Push(entry("b"))

	require.NoError(t, l.setPosition(0))
	require.NoError(t, l.setPosition(2))
	require.ErrorIs(t, l.setPosition(3), ErrInvalidPosition)
	require.ErrorIs(t, l.setPosition(-1), ErrInvalidPosition)
	require.Equal(t, 2, l.Position())
}

func TestEditLog_EntriesIsACopy(t *testing.T) {
	l := NewEditLog()
	l.Push(entry("a"))
	es := l.Entries()
	es[0].After = "changed"
	require.Equal(t, "a", l.Current().After)
}
