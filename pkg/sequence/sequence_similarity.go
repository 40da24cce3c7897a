// Package sequence provides the alignment metric family: the
// Ratcliff/Obershelp matching-blocks ratio plus longest-common-subsequence,
// longest-common-substring, and Smith-Waterman helpers.
//
// The matching-blocks search is quadratic per recursion level, which is fine
// for short strings but not suited to large documents.
package sequence

import (
	"context"

	"github.com/baditaflorin/go_string_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/core/sequence"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// SequenceSimilarity computes alignment-based similarity between two strings.
type SequenceSimilarity struct {
	logger ports.Logger
}

// Option defines a functional option for configuring SequenceSimilarity.
type Option func(*config)

type config struct {
	Logger ports.Logger
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// New creates a new SequenceSimilarity instance.
func New(opts ...Option) (*SequenceSimilarity, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	return &SequenceSimilarity{logger: cfg.Logger}, nil
}

// Compute calculates the matching-blocks similarity ratio between a and b.
func (s *SequenceSimilarity) Compute(ctx context.Context, a, b string) (domain.Result, error) {
	select {
	case <-ctx.Done():
		return domain.Result{}, ctx.Err()
	default:
	}

	ratio := sequence.StringRatio(a, b)

	s.logger.Debug("Computed sequence similarity",
		"ratio", ratio,
		"a_length", len([]rune(a)),
		"b_length", len([]rune(b)),
	)

	return domain.Result{
		Name:    "sequence",
		Score:   ratio,
		Kind:    domain.NormalizedSimilarity,
		Details: map[string]interface{}{},
	}, nil
}

// LCSLength returns the length of the longest common subsequence of a and b.
func (s *SequenceSimilarity) LCSLength(a, b string) int {
	return sequence.LCSLength([]rune(a), []rune(b))
}

// LongestCommonSubstring returns the longest contiguous substring common to a and b.
func (s *SequenceSimilarity) LongestCommonSubstring(a, b string) string {
	return sequence.LongestCommonSubstring(a, b)
}

// SmithWaterman returns the maximum local-alignment score between a and b
// under the default scoring (match 3, mismatch -3, gap -2).
func (s *SequenceSimilarity) SmithWaterman(a, b string) float64 {
	return sequence.SmithWaterman(a, b,
		sequence.DefaultMatchScore,
		sequence.DefaultMismatchScore,
		sequence.DefaultGapPenalty,
	)
}
