package normalizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// DefaultNormalizer implements the default text normalization strategy
// applied before token-based comparison: lower-case the input and replace
// punctuation with spaces so it does not leak into tokens.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize converts the input text to lower case and replaces punctuation with spaces.
func (n *DefaultNormalizer) Normalize(text string) string {
	text = strings.ToLower(text)
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsPunct(r) {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// IdentityNormalizer passes text through unchanged, for callers that want
// case-sensitive token comparison.
type IdentityNormalizer struct{}

// NewIdentityNormalizer creates a normalizer that performs no transformation.
func NewIdentityNormalizer() ports.Normalizer {
	return &IdentityNormalizer{}
}

// Normalize returns the text unchanged.
func (n *IdentityNormalizer) Normalize(text string) string { return text }
