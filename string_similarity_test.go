// string_similarity_test.go
package stringsimilarity

import (
	"context"
	"errors"
	"math"
	"testing"
)

func newSilent(t *testing.T, opts ...Option) *StringSimilarity {
	t.Helper()
	opts = append(opts, withPortsLogger(silentLogger{}))
	ss, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return ss
}

func TestComputeLiteralScenarios(t *testing.T) {
	tests := []struct {
		name      string
		algorithm Algorithm
		a, b      string
		expected  float64
		kind      ScoreKind
	}{
		{name: "Edit kitten sitting", algorithm: Edit, a: "kitten", b: "sitting", expected: 3, kind: RawDistance},
		{name: "Damerau transposition", algorithm: Damerau, a: "ab", b: "ba", expected: 1, kind: RawDistance},
		{name: "Edit one empty", algorithm: Edit, a: "", b: "abc", expected: 3, kind: RawDistance},
		{name: "Jaccard night nacht", algorithm: Jaccard, a: "night", b: "nacht", expected: 1.0 / 7.0, kind: NormalizedSimilarity},
		{name: "Sequence identical", algorithm: Sequence, a: "similar", b: "similar", expected: 1.0, kind: NormalizedSimilarity},
		{name: "Sequence one empty", algorithm: Sequence, a: "", b: "abc", expected: 0.0, kind: NormalizedSimilarity},
		{name: "Phonetic Robert Rupert", algorithm: PhoneticExact, a: "Robert", b: "Rupert", expected: 1.0, kind: NormalizedSimilarity},
		{name: "Hamming karolin kathrin", algorithm: Hamming, a: "karolin", b: "kathrin", expected: 3, kind: RawDistance},
		{name: "Jaro martha marhta", algorithm: Jaro, a: "martha", b: "marhta", expected: 17.0 / 18.0, kind: NormalizedSimilarity},
	}

	ss := newSilent(t)
	ctx := context.Background()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ss.Compute(ctx, tc.algorithm, tc.a, tc.b)
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			if math.Abs(result.Score-tc.expected) > 1e-9 {
				t.Errorf("score = %v, want %v", result.Score, tc.expected)
			}
			if result.Kind != tc.kind {
				t.Errorf("kind = %v, want %v", result.Kind, tc.kind)
			}
		})
	}
}

func TestComputeIdentity(t *testing.T) {
	// Identical inputs yield the identity value of the declared kind.
	ss := newSilent(t)
	ctx := context.Background()
	for _, alg := range Algorithms() {
		result, err := ss.Compute(ctx, alg, "similar text", "similar text")
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		want := 1.0
		if result.Kind == RawDistance {
			want = 0.0
		}
		if result.Score != want {
			t.Errorf("%s: identity score = %v, want %v", alg, result.Score, want)
		}
	}
}

func TestComputeSymmetry(t *testing.T) {
	// Equal-length inputs so HAMMING participates too.
	a, b := "night owl", "nacht owl"
	ss := newSilent(t)
	ctx := context.Background()
	for _, alg := range Algorithms() {
		r1, err := ss.Compute(ctx, alg, a, b)
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		r2, err := ss.Compute(ctx, alg, b, a)
		if err != nil {
			t.Fatalf("%s reversed: %v", alg, err)
		}
		if math.Abs(r1.Score-r2.Score) > 1e-9 {
			t.Errorf("%s not symmetric: %v vs %v", alg, r1.Score, r2.Score)
		}
	}
}

func TestComputeKindsNeverMixed(t *testing.T) {
	ss := newSilent(t)
	ctx := context.Background()
	for _, alg := range Algorithms() {
		result, err := ss.Compute(ctx, alg, "alpha", "omega")
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		if result.Kind != alg.Kind() {
			t.Errorf("%s: kind = %v, want %v", alg, result.Kind, alg.Kind())
		}
		if result.Kind == NormalizedSimilarity && (result.Score < 0 || result.Score > 1) {
			t.Errorf("%s: similarity out of bounds: %v", alg, result.Score)
		}
		if result.Kind == RawDistance && result.Score < 0 {
			t.Errorf("%s: negative distance: %v", alg, result.Score)
		}
	}
}

func TestComputeInvalidAlgorithm(t *testing.T) {
	ss := newSilent(t)
	_, err := ss.Compute(context.Background(), Algorithm("SOUNDS_LIKE"), "a", "b")
	if !errors.Is(err, ErrInvalidAlgorithm) {
		t.Errorf("expected ErrInvalidAlgorithm, got %v", err)
	}
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "Negative cost", opts: []Option{WithCosts(Costs{Insert: -1, Delete: 1, Substitute: 1, Transpose: 1})}},
		{name: "Zero ngram size", opts: []Option{WithNGramSize(0)}},
		{name: "Unknown scheme", opts: []Option{WithTokenizeScheme(TokenizeScheme("sentences"))}},
		{name: "Negative length guard", opts: []Option{WithMaxInputLength(-5)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := append(tc.opts, withPortsLogger(silentLogger{}))
			if _, err := New(opts...); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestComputeInputTooLong(t *testing.T) {
	ss := newSilent(t, WithMaxInputLength(5))
	_, err := ss.Compute(context.Background(), Edit, "abcdef", "abc")
	if !errors.Is(err, ErrInputTooLong) {
		t.Errorf("expected ErrInputTooLong, got %v", err)
	}

	// At the limit the computation proceeds.
	if _, err := ss.Compute(context.Background(), Edit, "abcde", "abc"); err != nil {
		t.Errorf("unexpected error at the limit: %v", err)
	}
}

func TestComputeHammingLengthMismatch(t *testing.T) {
	ss := newSilent(t)
	_, err := ss.Compute(context.Background(), Hamming, "abc", "ab")
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestComputeCancelledContext(t *testing.T) {
	ss := newSilent(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ss.Compute(ctx, Edit, "a", "b"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestComputeWordScheme(t *testing.T) {
	ss := newSilent(t, WithTokenizeScheme(WordSplit))
	result, err := ss.Compute(context.Background(), Jaccard, "the quick fox", "the lazy fox")
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	// {the, quick, fox} vs {the, lazy, fox}: 2 shared of 4 distinct.
	if math.Abs(result.Score-0.5) > 1e-9 {
		t.Errorf("word Jaccard = %v, want 0.5", result.Score)
	}
}

func TestComputeEditDetailsCarrySimilarity(t *testing.T) {
	ss := newSilent(t)
	result, err := ss.Compute(context.Background(), Edit, "kitten", "sitting")
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	sim, ok := result.Details["similarity"].(float64)
	if !ok {
		t.Fatalf("details missing similarity: %v", result.Details)
	}
	if math.Abs(sim-(1.0-3.0/7.0)) > 1e-9 {
		t.Errorf("details similarity = %v, want %v", sim, 1.0-3.0/7.0)
	}
}

func TestComputeWeightedCosts(t *testing.T) {
	ss := newSilent(t, WithCosts(Costs{Insert: 2, Delete: 2, Substitute: 3, Transpose: 1}))
	result, err := ss.Compute(context.Background(), Edit, "", "abc")
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if result.Score != 6 {
		t.Errorf("weighted insert distance = %v, want 6", result.Score)
	}
}

func TestComputePrecision(t *testing.T) {
	ss := newSilent(t, WithPrecision(2))
	result, err := ss.Compute(context.Background(), Jaccard, "night", "nacht")
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if result.Score != 0.14 {
		t.Errorf("rounded score = %v, want 0.14", result.Score)
	}
}

func TestComputeWithDefaults(t *testing.T) {
	result, err := ComputeWithDefaults(Damerau, "ab", "ba")
	if err != nil {
		t.Fatalf("ComputeWithDefaults failed: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("score = %v, want 1", result.Score)
	}
	if result.Kind != RawDistance {
		t.Errorf("kind = %v, want %v", result.Kind, RawDistance)
	}
}
