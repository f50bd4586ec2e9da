package history

import (
	"errors"
	"testing"
	"time"
)

// fakeSurface is a rune-indexed document that echoes every replacement back
// to its listener, the way a real widget would.
type fakeSurface struct {
	text     []rune
	cursor   int
	listener func(start int, removed, inserted string)
	fail     error
}

func (s *fakeSurface) Text() string { return string(s.text) }

func (s *fakeSurface) SetCursor(offset int) { s.cursor = offset }

func (s *fakeSurface) ReplaceRange(start, end int, text string) error {
	if s.fail != nil {
		return s.fail
	}
	if start < 0 || end < start || end > len(s.text) {
		return errors.New("range out of bounds")
	}
	removed := string(s.text[start:end])
	next := make([]rune, 0, len(s.text)-(end-start)+len(text))
	next = append(next, s.text[:start]...)
	next = append(next, []rune(text)...)
	next = append(next, s.text[end:]...)
	s.text = next
	if s.listener != nil {
		s.listener(start, removed, text)
	}
	return nil
}

// typeAt inserts text as if the user typed it.
func (s *fakeSurface) typeAt(t *testing.T, offset int, text string) {
	t.Helper()
	if err := s.ReplaceRange(offset, offset, text); err != nil {
		t.Fatalf("typeAt(%d, %q): %v", offset, text, err)
	}
}

// backspace deletes the rune before offset.
func (s *fakeSurface) backspace(t *testing.T, offset int) {
	t.Helper()
	if err := s.ReplaceRange(offset-1, offset, ""); err != nil {
		t.Fatalf("backspace(%d): %v", offset, err)
	}
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestController wires a controller to a fake surface holding text.
func newTestController(text string) (*Controller, *fakeSurface, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC)}
	surface := &fakeSurface{text: []rune(text)}
	cfg := DefaultConfig()
	cfg.Now = clock.Now
	c := NewController(surface, cfg)
	surface.listener = c.TextChanged
	return c, surface, clock
}

// mapStore is an in-memory Store whose contents tests can corrupt directly.
type mapStore struct {
	strings map[string]string
	ints    map[string]int
}

func newMapStore() *mapStore {
	return &mapStore{strings: map[string]string{}, ints: map[string]int{}}
}

func (m *mapStore) PutString(key, value string)  { m.strings[key] = value }
func (m *mapStore) PutInt(key string, value int) { m.ints[key] = value }

func (m *mapStore) GetString(key string) (string, bool) {
	v, ok := m.strings[key]
	return v, ok
}

func (m *mapStore) GetInt(key string) (int, bool) {
	v, ok := m.ints[key]
	return v, ok
}
