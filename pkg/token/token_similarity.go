// Package token provides the token-set metric family: Jaccard, Dice, overlap
// coefficient, and cosine similarity over character n-grams or words.
package token

import (
	"context"
	"fmt"

	"github.com/baditaflorin/go_string_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_string_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_string_similarity/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/core/tokenset"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// Formula re-exports the set-overlap formula identifiers.
type Formula = tokenset.Formula

const (
	Jaccard = tokenset.Jaccard
	Dice    = tokenset.Dice
	Overlap = tokenset.Overlap
	Cosine  = tokenset.Cosine
)

// Default configuration values.
const (
	DefaultNGramSize = 2
	DefaultFormula   = Jaccard
)

// TokenSimilarity computes set-overlap similarity between two strings.
type TokenSimilarity struct {
	formula    Formula
	tokenizer  ports.Tokenizer
	normalizer ports.Normalizer
	logger     ports.Logger
}

// Option defines a functional option for configuring TokenSimilarity.
type Option func(*config)

type config struct {
	Formula    Formula
	Scheme     domain.TokenizeScheme
	NGramSize  int
	Normalizer ports.Normalizer
	Logger     ports.Logger
}

// WithFormula sets the set-overlap formula.
func WithFormula(f Formula) Option {
	return func(cfg *config) {
		cfg.Formula = f
	}
}

// WithScheme sets the tokenization scheme.
func WithScheme(s domain.TokenizeScheme) Option {
	return func(cfg *config) {
		cfg.Scheme = s
	}
}

// WithNGramSize sets the n-gram size used by the char_ngram scheme.
func WithNGramSize(k int) Option {
	return func(cfg *config) {
		cfg.NGramSize = k
	}
}

// WithNormalizer sets a custom normalizer applied before tokenization.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// New creates a new TokenSimilarity instance.
func New(opts ...Option) (*TokenSimilarity, error) {
	cfg := &config{
		Formula:   DefaultFormula,
		Scheme:    domain.CharNGram,
		NGramSize: DefaultNGramSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.Formula.Valid() {
		return nil, fmt.Errorf("%w: %q", tokenset.ErrUnknownFormula, cfg.Formula)
	}

	var tok ports.Tokenizer
	switch cfg.Scheme {
	case domain.CharNGram:
		var err error
		tok, err = tokenizer.NewNGramTokenizer(cfg.NGramSize)
		if err != nil {
			return nil, err
		}
	case domain.WordSplit:
		tok = tokenizer.NewWordTokenizer()
	default:
		return nil, fmt.Errorf("unknown tokenize scheme %q", cfg.Scheme)
	}

	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}
	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	return &TokenSimilarity{
		formula:    cfg.Formula,
		tokenizer:  tok,
		normalizer: cfg.Normalizer,
		logger:     cfg.Logger,
	}, nil
}

// Compute calculates the configured set-overlap similarity between a and b.
func (t *TokenSimilarity) Compute(ctx context.Context, a, b string) (domain.Result, error) {
	select {
	case <-ctx.Done():
		return domain.Result{}, ctx.Err()
	default:
	}

	aTokens := t.tokenizer.Tokenize(t.normalizer.Normalize(a))
	bTokens := t.tokenizer.Tokenize(t.normalizer.Normalize(b))

	score, err := tokenset.Similarity(aTokens, bTokens, t.formula)
	if err != nil {
		return domain.Result{}, err
	}

	t.logger.Debug("Computed token similarity",
		"formula", t.formula,
		"score", score,
		"a_tokens", len(aTokens),
		"b_tokens", len(bTokens),
	)

	return domain.Result{
		Name:  "token_" + string(t.formula),
		Score: score,
		Kind:  domain.NormalizedSimilarity,
		Details: map[string]interface{}{
			"a_tokens": len(aTokens),
			"b_tokens": len(bTokens),
		},
	}, nil
}

// QGram calculates the q-gram ratio |A∩B| / max(|A|,|B|) between a and b
// using the configured tokenizer.
func (t *TokenSimilarity) QGram(a, b string) float64 {
	aTokens := t.tokenizer.Tokenize(t.normalizer.Normalize(a))
	bTokens := t.tokenizer.Tokenize(t.normalizer.Normalize(b))
	return tokenset.QGramSimilarity(aTokens, bTokens)
}

// BagDistance calculates the multiset bag distance between a and b using the
// configured tokenizer.
func (t *TokenSimilarity) BagDistance(a, b string) int {
	aTokens := t.tokenizer.Tokenize(t.normalizer.Normalize(a))
	bTokens := t.tokenizer.Tokenize(t.normalizer.Normalize(b))
	return tokenset.BagDistance(aTokens, bTokens)
}
