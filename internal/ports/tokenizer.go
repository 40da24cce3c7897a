package ports

// Tokenizer splits a string into an ordered sequence of non-empty tokens.
// Order of first occurrence is preserved and duplicates are kept; set
// semantics belong to the token-set engine, not the tokenizer.
type Tokenizer interface {
	Tokenize(text string) []string
}

// PhoneticEncoder maps a single word to a coarse phonetic code.
// Encoding is a pure function: identical input always yields an identical
// code. Non-alphabetic input yields the empty code.
type PhoneticEncoder interface {
	Encode(word string) string
}
