package tokenizer

import (
	"errors"

	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// NGramTokenizer produces all contiguous rune substrings of length N.
type NGramTokenizer struct {
	n int
}

// NewNGramTokenizer creates a character n-gram tokenizer. N must be at least 1.
func NewNGramTokenizer(n int) (ports.Tokenizer, error) {
	if n < 1 {
		return nil, errors.New("ngram size must be at least 1")
	}
	return &NGramTokenizer{n: n}, nil
}

// Tokenize returns every length-n contiguous substring of text in
// left-to-right order. An input shorter than n yields the whole input as a
// single token, so downstream set formulas never collapse to the 0/0 case
// for non-empty input. An empty input yields no tokens.
func (t *NGramTokenizer) Tokenize(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) < t.n {
		return []string{text}
	}
	tokens := make([]string, 0, len(runes)-t.n+1)
	for i := 0; i+t.n <= len(runes); i++ {
		tokens = append(tokens, string(runes[i:i+t.n]))
	}
	return tokens
}
