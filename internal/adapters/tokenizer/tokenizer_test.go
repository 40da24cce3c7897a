package tokenizer

import (
	"reflect"
	"testing"
)

func TestNGramTokenizer(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		input    string
		expected []string
	}{
		{name: "Bigrams", n: 2, input: "night", expected: []string{"ni", "ig", "gh", "ht"}},
		{name: "Unigrams", n: 1, input: "abc", expected: []string{"a", "b", "c"}},
		{name: "Trigrams", n: 3, input: "abcd", expected: []string{"abc", "bcd"}},
		{name: "Input shorter than n", n: 3, input: "ab", expected: []string{"ab"}},
		{name: "Empty input", n: 2, input: "", expected: nil},
		{name: "Unicode runes", n: 2, input: "héllo", expected: []string{"hé", "él", "ll", "lo"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := NewNGramTokenizer(tc.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := tok.Tokenize(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNGramTokenizerInvalidSize(t *testing.T) {
	if _, err := NewNGramTokenizer(0); err == nil {
		t.Error("expected an error for n-gram size 0")
	}
	if _, err := NewNGramTokenizer(-1); err == nil {
		t.Error("expected an error for negative n-gram size")
	}
}

func TestWordTokenizer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Simple words", input: "the quick fox", expected: []string{"the", "quick", "fox"}},
		{name: "Punctuation separators", input: "one,two;three!", expected: []string{"one", "two", "three"}},
		{name: "Separator runs", input: "a -- b", expected: []string{"a", "b"}},
		{name: "Digits kept", input: "v2 beta3", expected: []string{"v2", "beta3"}},
		{name: "Empty input", input: "", expected: nil},
		{name: "Separators only", input: " ,.! ", expected: nil},
	}

	tok := NewWordTokenizer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tok.Tokenize(tc.input)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}
