// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/tidenote/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount reports lines, words and characters of the note via :wc.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize registers the :wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	s := Count(p.api.GetBufferText())
	s.Lines = p.api.GetBufferLineCount()
	p.api.SetStatusMessage("Lines: %d, Words: %d, Chars: %d", s.Lines, s.Words, s.Chars)
	return nil
}

// Stats holds counts for a text.
type Stats struct {
	Lines int
	Words int
	Chars int // User-perceived characters (grapheme clusters)
}

// Count computes word and character counts using Unicode segmentation, so
// "naïve café" is two words and an emoji with modifiers is one character.
func Count(text string) Stats {
	var s Stats
	s.Chars = uniseg.GraphemeClusterCount(text)

	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if isWord(word) {
			s.Words++
		}
	}
	return s
}

// isWord reports whether a word-boundary segment holds a letter or digit
// rather than spaces or punctuation.
func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
