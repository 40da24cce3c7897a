package domain

// ScoreKind tags the semantics of a Result's Score.
type ScoreKind string

const (
	// RawDistance is an unbounded non-negative score where 0 means identical.
	RawDistance ScoreKind = "distance"
	// NormalizedSimilarity is a score in [0,1] where 1 means identical.
	NormalizedSimilarity ScoreKind = "similarity"
)

// Result holds the outcome of a similarity or distance computation.
type Result struct {
	// Name of the algorithm that produced the score.
	Name string
	// Score is the computed value; its meaning depends on Kind.
	Score float64
	// Kind declares whether Score is a raw distance or a normalized similarity.
	Kind ScoreKind
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}

// Algorithm identifies one metric in the closed algorithm set.
type Algorithm string

const (
	Edit          Algorithm = "EDIT"
	Damerau       Algorithm = "DAMERAU"
	Sequence      Algorithm = "SEQUENCE"
	Jaccard       Algorithm = "JACCARD"
	Dice          Algorithm = "DICE"
	Overlap       Algorithm = "OVERLAP"
	Cosine        Algorithm = "COSINE"
	PhoneticExact Algorithm = "PHONETIC_EXACT"
	PhoneticEdit  Algorithm = "PHONETIC_EDIT"
	Hamming       Algorithm = "HAMMING"
	Jaro          Algorithm = "JARO"
	JaroWinkler   Algorithm = "JARO_WINKLER"
)

// Algorithms lists every recognized algorithm identifier.
func Algorithms() []Algorithm {
	return []Algorithm{
		Edit, Damerau, Sequence,
		Jaccard, Dice, Overlap, Cosine,
		PhoneticExact, PhoneticEdit,
		Hamming, Jaro, JaroWinkler,
	}
}

// Valid reports whether a is a member of the closed algorithm set.
func (a Algorithm) Valid() bool {
	switch a {
	case Edit, Damerau, Sequence, Jaccard, Dice, Overlap, Cosine,
		PhoneticExact, PhoneticEdit, Hamming, Jaro, JaroWinkler:
		return true
	}
	return false
}

// Kind returns the ScoreKind the dispatcher declares for an algorithm.
func (a Algorithm) Kind() ScoreKind {
	switch a {
	case Edit, Damerau, Hamming:
		return RawDistance
	default:
		return NormalizedSimilarity
	}
}

// TokenizeScheme selects how the token-family algorithms split their input.
type TokenizeScheme string

const (
	CharNGram TokenizeScheme = "char_ngram"
	WordSplit TokenizeScheme = "word"
)

// PhoneticMode selects how encoded words are scored against each other.
type PhoneticMode string

const (
	// ExactMode scores 1.0 when the codes are equal, 0.0 otherwise.
	ExactMode PhoneticMode = "exact"
	// EditMode scores the normalized edit distance between the codes.
	EditMode PhoneticMode = "edit"
)
