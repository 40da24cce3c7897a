// Package phonetic implements pronunciation-sensitive comparison: a
// Soundex-family encoder and the scoring engine that compares words by their
// codes instead of their spelling.
package phonetic

import (
	"strings"

	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// Soundex encodes a word as its American Soundex code: the first letter
// followed by three digit classes, zero-padded.
type Soundex struct{}

// NewSoundex creates a Soundex encoder.
func NewSoundex() ports.PhoneticEncoder { return Soundex{} }

// Encode returns the Soundex code for word. Encoding is case-insensitive and
// ignores non-letter runes; a word with no A-Z letters yields the empty code,
// which is its own equivalence class distinct from every real code.
//
// Adjacent letters sharing a digit class collapse into one digit. H and W are
// transparent to that adjacency, while vowels (and Y) break it, per the
// standard Soundex rule.
func (Soundex) Encode(word string) string {
	var letters []rune
	for _, r := range strings.ToUpper(word) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return ""
	}

	code := make([]byte, 1, 4)
	code[0] = byte(letters[0])
	last := digitClass(letters[0])

	for _, r := range letters[1:] {
		if len(code) == 4 {
			break
		}
		if r == 'H' || r == 'W' {
			continue
		}
		d := digitClass(r)
		if d == 0 {
			last = 0
			continue
		}
		if d != last {
			code = append(code, '0'+d)
		}
		last = d
	}

	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}

// digitClass maps a letter to its Soundex digit class; vowels and Y map to 0.
func digitClass(r rune) byte {
	switch r {
	case 'B', 'F', 'P', 'V':
		return 1
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return 2
	case 'D', 'T':
		return 3
	case 'L':
		return 4
	case 'M', 'N':
		return 5
	case 'R':
		return 6
	}
	return 0
}
