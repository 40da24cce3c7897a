// Package tokenset implements set-overlap similarity coefficients over token
// sequences. Deduplication into set semantics happens here, not in the
// tokenizer.
package tokenset

import (
	"errors"
	"math"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrUnknownFormula is returned when the formula identifier is not recognized.
var ErrUnknownFormula = errors.New("unknown token similarity formula")

// Formula identifies one of the supported set-overlap coefficients.
type Formula string

const (
	Jaccard Formula = "JACCARD"
	Dice    Formula = "DICE"
	Overlap Formula = "OVERLAP"
	Cosine  Formula = "COSINE"
)

// Valid reports whether f is a recognized formula.
func (f Formula) Valid() bool {
	switch f {
	case Jaccard, Dice, Overlap, Cosine:
		return true
	}
	return false
}

// Similarity computes the chosen coefficient over the two token sequences.
// All formulas return values in [0,1]. Two empty inputs are identical by
// convention (1.0); exactly one empty input scores 0.0. An unrecognized
// formula is rejected rather than silently defaulted.
func Similarity(aTokens, bTokens []string, formula Formula) (float64, error) {
	if !formula.Valid() {
		return 0, ErrUnknownFormula
	}

	if len(aTokens) == 0 && len(bTokens) == 0 {
		return 1.0, nil
	}
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0.0, nil
	}

	if formula == Cosine {
		return cosine(aTokens, bTokens), nil
	}

	setA := mapset.NewThreadUnsafeSet(aTokens...)
	setB := mapset.NewThreadUnsafeSet(bTokens...)
	inter := setA.Intersect(setB).Cardinality()

	switch formula {
	case Jaccard:
		union := setA.Union(setB).Cardinality()
		return float64(inter) / float64(union), nil
	case Dice:
		return 2.0 * float64(inter) / float64(setA.Cardinality()+setB.Cardinality()), nil
	case Overlap:
		minCard := setA.Cardinality()
		if c := setB.Cardinality(); c < minCard {
			minCard = c
		}
		return float64(inter) / float64(minCard), nil
	}

	return 0, ErrUnknownFormula
}

// cosine computes the cosine of the term-frequency vectors of the two token
// multisets. A zero norm on either side scores zero; the both-empty case is
// handled by the caller.
func cosine(aTokens, bTokens []string) float64 {
	freqA := termFrequencies(aTokens)
	freqB := termFrequencies(bTokens)

	var dot, normA, normB float64
	for token, fa := range freqA {
		normA += float64(fa) * float64(fa)
		if fb, ok := freqB[token]; ok {
			dot += float64(fa) * float64(fb)
		}
	}
	for _, fb := range freqB {
		normB += float64(fb) * float64(fb)
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// QGramSimilarity is the ratio of common tokens to the larger deduplicated
// token set: |A∩B| / max(|A|,|B|).
func QGramSimilarity(aTokens, bTokens []string) float64 {
	if len(aTokens) == 0 && len(bTokens) == 0 {
		return 1.0
	}
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0.0
	}
	setA := mapset.NewThreadUnsafeSet(aTokens...)
	setB := mapset.NewThreadUnsafeSet(bTokens...)
	inter := setA.Intersect(setB).Cardinality()
	maxCard := setA.Cardinality()
	if c := setB.Cardinality(); c > maxCard {
		maxCard = c
	}
	return float64(inter) / float64(maxCard)
}

// BagDistance sums the absolute differences of the term frequencies of the
// two token multisets.
func BagDistance(aTokens, bTokens []string) int {
	freqA := termFrequencies(aTokens)
	freqB := termFrequencies(bTokens)

	distance := 0
	for token, fa := range freqA {
		diff := fa - freqB[token]
		if diff < 0 {
			diff = -diff
		}
		distance += diff
	}
	for token, fb := range freqB {
		if _, seen := freqA[token]; !seen {
			distance += fb
		}
	}
	return distance
}

func termFrequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}
