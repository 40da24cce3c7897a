package sequence

import (
	"context"
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{name: "Identical", a: "similar", b: "similar", expected: 1.0},
		{name: "One empty", a: "", b: "abc", expected: 0.0},
		{name: "Partial overlap", a: "abcd", b: "bcde", expected: 0.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := s.Compute(context.Background(), tc.a, tc.b)
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			if math.Abs(result.Score-tc.expected) > 1e-9 {
				t.Errorf("score = %v, want %v", result.Score, tc.expected)
			}
		})
	}
}

func TestAlignmentHelpers(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := s.LCSLength("ABCBDAB", "BDCABA"); got != 4 {
		t.Errorf("LCSLength = %d, want 4", got)
	}
	if got := s.LongestCommonSubstring("abcdef", "zcdemn"); got != "cde" {
		t.Errorf("LongestCommonSubstring = %q, want cde", got)
	}
	if got := s.SmithWaterman("hello", "hello"); got != 15 {
		t.Errorf("SmithWaterman = %v, want 15", got)
	}
}
