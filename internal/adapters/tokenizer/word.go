package tokenizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// WordTokenizer splits text into words on runs of non-alphanumeric runes.
type WordTokenizer struct{}

// NewWordTokenizer creates a word tokenizer.
func NewWordTokenizer() ports.Tokenizer {
	return &WordTokenizer{}
}

// Tokenize splits text on every run of non-alphanumeric separators,
// discarding empty tokens. An input with no alphanumeric runes yields no
// tokens.
func (t *WordTokenizer) Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
