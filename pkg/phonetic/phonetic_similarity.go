// Package phonetic provides the pronunciation metric family: Soundex
// encoding, phonetic word-pair scoring, and syllable alignment.
package phonetic

import (
	"context"

	"github.com/baditaflorin/go_string_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_string_similarity/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/core/phonetic"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// Mode re-exports the phonetic scoring modes.
type Mode = domain.PhoneticMode

const (
	ExactMode = domain.ExactMode
	EditMode  = domain.EditMode
)

// PhoneticSimilarity scores two inputs by how their words sound.
type PhoneticSimilarity struct {
	mode    Mode
	encoder ports.PhoneticEncoder
	engine  *phonetic.Engine
	logger  ports.Logger
}

// Option defines a functional option for configuring PhoneticSimilarity.
type Option func(*config)

type config struct {
	Mode   Mode
	Logger ports.Logger
}

// WithMode selects exact-code or edit-distance scoring of the codes.
func WithMode(m Mode) Option {
	return func(cfg *config) {
		cfg.Mode = m
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// New creates a new PhoneticSimilarity instance. The default mode is exact.
func New(opts ...Option) (*PhoneticSimilarity, error) {
	cfg := &config{Mode: ExactMode}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Mode != ExactMode && cfg.Mode != EditMode {
		return nil, phonetic.ErrUnknownMode
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	encoder := phonetic.NewSoundex()
	return &PhoneticSimilarity{
		mode:    cfg.Mode,
		encoder: encoder,
		engine:  phonetic.NewEngine(encoder, tokenizer.NewWordTokenizer()),
		logger:  cfg.Logger,
	}, nil
}

// Compute calculates the phonetic similarity between a and b: both inputs
// are word-split, each corresponding word pair is scored by code, and the
// scores are averaged.
func (p *PhoneticSimilarity) Compute(ctx context.Context, a, b string) (domain.Result, error) {
	select {
	case <-ctx.Done():
		return domain.Result{}, ctx.Err()
	default:
	}

	score, err := p.engine.Similarity(a, b, p.mode)
	if err != nil {
		return domain.Result{}, err
	}

	p.logger.Debug("Computed phonetic similarity",
		"mode", p.mode,
		"score", score,
	)

	return domain.Result{
		Name:    "phonetic_" + string(p.mode),
		Score:   score,
		Kind:    domain.NormalizedSimilarity,
		Details: map[string]interface{}{"mode": string(p.mode)},
	}, nil
}

// Encode returns the phonetic code of a single word.
func (p *PhoneticSimilarity) Encode(word string) string {
	return p.encoder.Encode(word)
}

// SyllableRatio aligns the syllable sequences of a and b and returns their
// matching-blocks similarity ratio.
func (p *PhoneticSimilarity) SyllableRatio(a, b string) float64 {
	return phonetic.SyllableRatio(a, b)
}
