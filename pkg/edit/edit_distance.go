// Package edit provides the character-edit metric family: weighted
// Levenshtein and restricted Damerau-Levenshtein distances, plus the
// Hamming, Jaro, and Jaro-Winkler character metrics.
package edit

import (
	"context"

	"github.com/baditaflorin/go_string_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/core/editdist"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// Costs re-exports the edit-operation weights.
type Costs = editdist.Costs

// DefaultCosts returns unit costs for every operation.
func DefaultCosts() Costs { return editdist.DefaultCosts() }

// EditDistance computes minimum-cost transformation distances between two strings.
type EditDistance struct {
	costs          Costs
	transpositions bool
	logger         ports.Logger
}

// Option defines a functional option for configuring EditDistance.
type Option func(*config)

type config struct {
	Costs          Costs
	Transpositions bool
	Logger         ports.Logger
}

// WithCosts sets custom operation costs.
func WithCosts(c Costs) Option {
	return func(cfg *config) {
		cfg.Costs = c
	}
}

// WithTranspositions enables the adjacent-transposition operation
// (the restricted Damerau-Levenshtein variant).
func WithTranspositions() Option {
	return func(cfg *config) {
		cfg.Transpositions = true
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// New creates a new EditDistance instance.
func New(opts ...Option) (*EditDistance, error) {
	cfg := &config{Costs: DefaultCosts()}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Costs.Validate(); err != nil {
		return nil, err
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	return &EditDistance{
		costs:          cfg.Costs,
		transpositions: cfg.Transpositions,
		logger:         cfg.Logger,
	}, nil
}

// Compute calculates the edit distance between a and b. The Result carries a
// raw distance score; the normalized similarity is echoed in Details.
func (e *EditDistance) Compute(ctx context.Context, a, b string) (domain.Result, error) {
	select {
	case <-ctx.Done():
		return domain.Result{}, ctx.Err()
	default:
	}

	ra := []rune(a)
	rb := []rune(b)

	var d float64
	name := "edit"
	if e.transpositions {
		d = editdist.DamerauDistance(a, b, e.costs)
		name = "damerau"
	} else {
		d = editdist.Distance(a, b, e.costs)
	}

	e.logger.Debug("Computed edit distance",
		"name", name,
		"distance", d,
		"a_length", len(ra),
		"b_length", len(rb),
	)

	return domain.Result{
		Name:  name,
		Score: d,
		Kind:  domain.RawDistance,
		Details: map[string]interface{}{
			"a_length":   len(ra),
			"b_length":   len(rb),
			"similarity": editdist.Similarity(d, len(ra), len(rb)),
		},
	}, nil
}

// Hamming counts the differing positions of two equal-length strings.
func (e *EditDistance) Hamming(a, b string) (int, error) {
	return editdist.Hamming(a, b)
}

// Jaro computes the Jaro similarity in [0,1].
func (e *EditDistance) Jaro(a, b string) float64 {
	return editdist.Jaro(a, b)
}

// JaroWinkler computes the Jaro-Winkler similarity with the standard 0.1
// prefix scaling.
func (e *EditDistance) JaroWinkler(a, b string) float64 {
	return editdist.JaroWinkler(a, b, editdist.DefaultWinklerScaling)
}
