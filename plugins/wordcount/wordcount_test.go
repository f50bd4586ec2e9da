package wordcount

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidenote/internal/plugin"
)

func TestCount(t *testing.T) {
	tests := []struct {
		text  string
		words int
		chars int
	}{
		{"", 0, 0},
		{"hello world", 2, 11},
		{"  spaced   out\n\tlines ", 3, 22},
		{"naïve café, don't stop.", 4, 23},
		{"é 👍🏽", 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := Count(tt.text)
			require.Equal(t, tt.words, s.Words)
			require.Equal(t, tt.chars, s.Chars)
		})
	}
}

type stubAPI struct {
	plugin.EditorAPI
	text     string
	lines    int
	status   string
	commands map[string]plugin.CommandFunc
}

func (s *stubAPI) GetBufferText() string   { return s.text }
func (s *stubAPI) GetBufferLineCount() int { return s.lines }
func (s *stubAPI) SetStatusMessage(format string, args ...interface{}) {
	s.status = fmt.Sprintf(format, args...)
}

func (s *stubAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	s.commands[name] = fn
	return nil
}

func TestWordCount_Command(t *testing.T) {
	api := &stubAPI{text: "one two\nthree", lines: 2, commands: map[string]plugin.CommandFunc{}}
	p := New()
	require.NoError(t, p.Initialize(api))
	require.Contains(t, api.commands, "wc")

	require.NoError(t, api.commands["wc"](nil))
	require.Equal(t, "Lines: 2, Words: 3, Chars: 13", api.status)
	require.NoError(t, p.Shutdown())
}
