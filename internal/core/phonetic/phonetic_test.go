package phonetic

import (
	"math"
	"reflect"
	"testing"

	"github.com/baditaflorin/go_string_similarity/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
)

func TestSoundexEncode(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{word: "Robert", expected: "R163"},
		{word: "Rupert", expected: "R163"},
		{word: "Ashcraft", expected: "A261"}, // s and c collapse across the transparent h
		{word: "Tymczak", expected: "T522"},  // y breaks adjacency like a vowel
		{word: "Pfister", expected: "P236"},  // f collapses into the leading P's class
		{word: "Honeyman", expected: "H555"},
		{word: "Jackson", expected: "J250"},
		{word: "lowercase", expected: "L622"},
		{word: "A", expected: "A000"},
		{word: "12345", expected: ""},
		{word: "", expected: ""},
		{word: "O'Brien", expected: "O165"},
	}

	enc := NewSoundex()
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			if got := enc.Encode(tc.word); got != tc.expected {
				t.Errorf("Encode(%q) = %q, want %q", tc.word, got, tc.expected)
			}
		})
	}
}

func TestSoundexDeterminism(t *testing.T) {
	enc := NewSoundex()
	for i := 0; i < 3; i++ {
		if got := enc.Encode("Washington"); got != "W252" {
			t.Fatalf("Encode(Washington) = %q, want W252", got)
		}
	}
}

func newTestEngine() *Engine {
	return NewEngine(NewSoundex(), tokenizer.NewWordTokenizer())
}

func TestSimilarityExactMode(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{name: "Robert Rupert", a: "Robert", b: "Rupert", expected: 1.0},
		{name: "Different codes", a: "Robert", b: "Smith", expected: 0.0},
		{name: "Multi-word full match", a: "robert smith", b: "rupert smyth", expected: 1.0},
		{name: "Unequal word counts", a: "robert", b: "robert smith", expected: 0.5},
		{name: "Both empty", a: "", b: "", expected: 1.0},
		{name: "One empty", a: "", b: "robert", expected: 0.0},
		{name: "Punctuation only", a: "...", b: "...", expected: 1.0},
	}

	eng := newTestEngine()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eng.Similarity(tc.a, tc.b, domain.ExactMode)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Similarity(%q, %q, exact) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestSimilarityEditMode(t *testing.T) {
	eng := newTestEngine()

	// Identical codes score one.
	got, err := eng.Similarity("Robert", "Rupert", domain.EditMode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("edit-mode similarity of equal codes = %v, want 1.0", got)
	}

	// R163 vs S530: all four positions differ under unit costs.
	got, err = eng.Similarity("Robert", "Smith", domain.EditMode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.0 {
		t.Errorf("edit-mode similarity of disjoint codes = %v, want 0.0", got)
	}

	// R163 vs R155 (Robert vs Robin? use codes sharing a prefix): Roberts R1632 -> R163.
	// Robert vs Ruben: R163 vs R150, two of four positions differ.
	got, err = eng.Similarity("Robert", "Ruben", domain.EditMode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("edit-mode similarity Robert/Ruben = %v, want 0.5", got)
	}
}

func TestSimilarityUnknownMode(t *testing.T) {
	eng := newTestEngine()
	if _, err := eng.Similarity("a", "b", domain.PhoneticMode("fuzzy")); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected []string
	}{
		{word: "middle", expected: []string{"mid", "dle"}},
		{word: "banana", expected: []string{"ba", "na", "na"}},
		{word: "strength", expected: []string{"strength"}},
		{word: "", expected: nil},
		{word: "bcd", expected: nil},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got := Syllables(tc.word)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Syllables(%q) = %v, want %v", tc.word, got, tc.expected)
			}
		})
	}
}

func TestSyllableRatio(t *testing.T) {
	if got := SyllableRatio("banana", "banana"); got != 1.0 {
		t.Errorf("SyllableRatio(banana, banana) = %v, want 1.0", got)
	}
	if got := SyllableRatio("", ""); got != 1.0 {
		t.Errorf("SyllableRatio of empty inputs = %v, want 1.0", got)
	}
	if got := SyllableRatio("banana", "xyz"); got != 0.0 {
		t.Errorf("SyllableRatio(banana, xyz) = %v, want 0.0", got)
	}
}
