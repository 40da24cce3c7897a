package phonetic

import (
	"strings"

	"github.com/baditaflorin/go_string_similarity/internal/core/sequence"
)

// Syllables splits a word into approximate syllables: each syllable is a run
// of leading consonants, a vowel group, and either all trailing consonants at
// the end of the word or a single consonant when at least one more consonant
// follows before the next vowel. Runs with no vowel at all are dropped.
func Syllables(word string) []string {
	w := []rune(strings.ToLower(word))
	n := len(w)
	var out []string

	i := 0
	for i < n {
		start := i
		for i < n && !isVowelish(w[i]) {
			i++
		}
		if i == n {
			// Trailing consonants with no vowel form no syllable.
			break
		}
		for i < n && isVowelish(w[i]) {
			i++
		}
		j := i
		for j < n && !isVowelish(w[j]) {
			j++
		}
		if j == n {
			i = n
		} else if j-i >= 2 {
			i++
		}
		out = append(out, string(w[start:i]))
	}
	return out
}

// SyllableRatio aligns the syllable sequences of a and b and returns their
// matching-blocks similarity ratio.
func SyllableRatio(a, b string) float64 {
	return sequence.Ratio(Syllables(a), Syllables(b))
}

func isVowelish(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
