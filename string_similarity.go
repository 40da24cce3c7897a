// string_similarity.go
// Package stringsimilarity computes distance and similarity scores between
// two strings, selectable from four algorithm families: character-edit,
// sequence-alignment, token-set, and phonetic-encoding metrics.
//
// Every algorithm is dispatched through a single entry point that performs
// the required preprocessing (tokenization, phonetic encoding), delegates to
// the matching engine, and tags the result with its score kind: a raw
// distance (0 means identical) or a normalized similarity in [0,1] (1 means
// identical). The two kinds are never silently mixed.
//
// All computations are pure and in-memory. Calls share no mutable state, so
// concurrent use from multiple goroutines is safe. The dynamic-programming
// engines run in O(m*n) time; callers comparing untrusted or very long input
// should bound it with WithMaxInputLength.
package stringsimilarity

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_string_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_string_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_string_similarity/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/core/editdist"
	"github.com/baditaflorin/go_string_similarity/internal/core/phonetic"
	"github.com/baditaflorin/go_string_similarity/internal/core/sequence"
	"github.com/baditaflorin/go_string_similarity/internal/core/tokenset"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// Re-exported domain types, so callers need only this package.
type (
	// Result holds the outcome of a metric computation.
	Result = domain.Result
	// ScoreKind tags a Result as a raw distance or a normalized similarity.
	ScoreKind = domain.ScoreKind
	// Algorithm identifies one metric in the closed algorithm set.
	Algorithm = domain.Algorithm
	// TokenizeScheme selects character n-gram or word tokenization.
	TokenizeScheme = domain.TokenizeScheme
	// Costs configures the edit-distance operation weights.
	Costs = editdist.Costs
)

const (
	RawDistance          = domain.RawDistance
	NormalizedSimilarity = domain.NormalizedSimilarity

	Edit          = domain.Edit
	Damerau       = domain.Damerau
	Sequence      = domain.Sequence
	Jaccard       = domain.Jaccard
	Dice          = domain.Dice
	Overlap       = domain.Overlap
	Cosine        = domain.Cosine
	PhoneticExact = domain.PhoneticExact
	PhoneticEdit  = domain.PhoneticEdit
	Hamming       = domain.Hamming
	Jaro          = domain.Jaro
	JaroWinkler   = domain.JaroWinkler

	CharNGram = domain.CharNGram
	WordSplit = domain.WordSplit
)

// ErrLengthMismatch is returned by the HAMMING algorithm for inputs of
// unequal rune length.
var ErrLengthMismatch = editdist.ErrLengthMismatch

// DefaultCosts returns unit costs for every edit operation.
func DefaultCosts() Costs { return editdist.DefaultCosts() }

// Algorithms lists every recognized algorithm identifier.
func Algorithms() []Algorithm { return domain.Algorithms() }

// Default configuration values.
const (
	DefaultNGramSize = 2
	DefaultScheme    = CharNGram
)

// Config holds the per-instance configuration of the dispatcher.
type Config struct {
	Costs          Costs
	TokenizeScheme TokenizeScheme
	NGramSize      int
	MaxInputLength int
	// Precision rounds returned scores to this many decimal places when
	// non-negative; negative leaves scores exact.
	Precision  int
	Logger     ports.Logger
	Normalizer ports.Normalizer
}

// Option defines a functional option for configuring the dispatcher.
type Option func(*Config)

// WithCosts sets custom edit-operation costs.
func WithCosts(c Costs) Option {
	return func(cfg *Config) {
		cfg.Costs = c
	}
}

// WithTokenizeScheme sets the tokenization scheme for the token-family algorithms.
func WithTokenizeScheme(s TokenizeScheme) Option {
	return func(cfg *Config) {
		cfg.TokenizeScheme = s
	}
}

// WithNGramSize sets the n-gram size used by the char_ngram scheme.
func WithNGramSize(k int) Option {
	return func(cfg *Config) {
		cfg.NGramSize = k
	}
}

// WithMaxInputLength guards against oversized input; inputs longer than n
// runes fail with ErrInputTooLong. Zero disables the guard.
func WithMaxInputLength(n int) Option {
	return func(cfg *Config) {
		cfg.MaxInputLength = n
	}
}

// WithPrecision rounds returned scores to p decimal places.
func WithPrecision(p int) Option {
	return func(cfg *Config) {
		cfg.Precision = p
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer applied before tokenization.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *Config) {
		cfg.Normalizer = n
	}
}

// StringSimilarity dispatches metric computations to the algorithm engines
// with the configured preprocessing and normalization.
type StringSimilarity struct {
	config       Config
	wordTokens   ports.Tokenizer
	ngramTokens  ports.Tokenizer
	phoneticCore *phonetic.Engine
}

// New creates a new StringSimilarity dispatcher with the provided functional
// options. If no logger is provided, a default logger is created.
func New(opts ...Option) (*StringSimilarity, error) {
	cfg := Config{
		Costs:          DefaultCosts(),
		TokenizeScheme: DefaultScheme,
		NGramSize:      DefaultNGramSize,
		Precision:      -1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Costs.Validate(); err != nil {
		return nil, wrapError("new", fmt.Errorf("%w: %v", ErrInvalidConfiguration, err))
	}
	if cfg.TokenizeScheme != CharNGram && cfg.TokenizeScheme != WordSplit {
		return nil, wrapError("new", fmt.Errorf("%w: unknown tokenize scheme %q", ErrInvalidConfiguration, cfg.TokenizeScheme))
	}
	if cfg.MaxInputLength < 0 {
		return nil, wrapError("new", fmt.Errorf("%w: max input length must not be negative", ErrInvalidConfiguration))
	}

	if cfg.Logger == nil {
		lg, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger.FromExisting(lg)
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}

	ngram, err := tokenizer.NewNGramTokenizer(cfg.NGramSize)
	if err != nil {
		return nil, wrapError("new", fmt.Errorf("%w: %v", ErrInvalidConfiguration, err))
	}
	words := tokenizer.NewWordTokenizer()

	return &StringSimilarity{
		config:       cfg,
		wordTokens:   words,
		ngramTokens:  ngram,
		phoneticCore: phonetic.NewEngine(phonetic.NewSoundex(), words),
	}, nil
}

// Compute evaluates one algorithm on the two inputs and returns a Result
// tagged with the score kind declared for that algorithm. Unknown algorithm
// identifiers fail with ErrInvalidAlgorithm; malformed options fail with
// ErrInvalidConfiguration; no partial results are ever returned.
func (ss *StringSimilarity) Compute(ctx context.Context, algorithm Algorithm, a, b string) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, wrapError(string(algorithm), ctx.Err())
	default:
	}

	if !algorithm.Valid() {
		return Result{}, wrapError("compute", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, algorithm))
	}

	if limit := ss.config.MaxInputLength; limit > 0 {
		if n := utf8.RuneCountInString(a); n > limit {
			return Result{}, wrapError(string(algorithm), fmt.Errorf("%w: first input is %d runes, limit %d", ErrInputTooLong, n, limit))
		}
		if n := utf8.RuneCountInString(b); n > limit {
			return Result{}, wrapError(string(algorithm), fmt.Errorf("%w: second input is %d runes, limit %d", ErrInputTooLong, n, limit))
		}
	}

	ss.config.Logger.Debug("Starting metric computation",
		"algorithm", algorithm,
		"a", a,
		"b", b,
	)

	result, err := ss.dispatch(algorithm, a, b)
	if err != nil {
		ss.config.Logger.Error("Metric computation failed",
			"algorithm", algorithm,
			"error", err,
		)
		return Result{}, err
	}

	result.Score = ss.round(result.Score)

	ss.config.Logger.Debug("Computed metric",
		"algorithm", algorithm,
		"score", result.Score,
		"kind", result.Kind,
	)
	return result, nil
}

func (ss *StringSimilarity) dispatch(algorithm Algorithm, a, b string) (Result, error) {
	name := strings.ToLower(string(algorithm))
	details := make(map[string]interface{})

	switch algorithm {
	case Edit, Damerau:
		lenA := utf8.RuneCountInString(a)
		lenB := utf8.RuneCountInString(b)
		var d float64
		if algorithm == Damerau {
			d = editdist.DamerauDistance(a, b, ss.config.Costs)
		} else {
			d = editdist.Distance(a, b, ss.config.Costs)
		}
		details["a_length"] = lenA
		details["b_length"] = lenB
		details["similarity"] = ss.round(editdist.Similarity(d, lenA, lenB))
		return Result{Name: name, Score: d, Kind: RawDistance, Details: details}, nil

	case Hamming:
		d, err := editdist.Hamming(a, b)
		if err != nil {
			return Result{}, wrapError(name, err)
		}
		details["length"] = utf8.RuneCountInString(a)
		return Result{Name: name, Score: float64(d), Kind: RawDistance, Details: details}, nil

	case Jaro:
		return Result{Name: name, Score: editdist.Jaro(a, b), Kind: NormalizedSimilarity, Details: details}, nil

	case JaroWinkler:
		s := editdist.JaroWinkler(a, b, editdist.DefaultWinklerScaling)
		return Result{Name: name, Score: s, Kind: NormalizedSimilarity, Details: details}, nil

	case Sequence:
		return Result{Name: name, Score: sequence.StringRatio(a, b), Kind: NormalizedSimilarity, Details: details}, nil

	case Jaccard, Dice, Overlap, Cosine:
		tok := ss.ngramTokens
		if ss.config.TokenizeScheme == WordSplit {
			tok = ss.wordTokens
		}
		aTokens := tok.Tokenize(ss.config.Normalizer.Normalize(a))
		bTokens := tok.Tokenize(ss.config.Normalizer.Normalize(b))
		s, err := tokenset.Similarity(aTokens, bTokens, tokenset.Formula(algorithm))
		if err != nil {
			return Result{}, wrapError(name, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err))
		}
		details["a_tokens"] = len(aTokens)
		details["b_tokens"] = len(bTokens)
		return Result{Name: name, Score: s, Kind: NormalizedSimilarity, Details: details}, nil

	case PhoneticExact, PhoneticEdit:
		mode := domain.ExactMode
		if algorithm == PhoneticEdit {
			mode = domain.EditMode
		}
		s, err := ss.phoneticCore.Similarity(a, b, mode)
		if err != nil {
			return Result{}, wrapError(name, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err))
		}
		return Result{Name: name, Score: s, Kind: NormalizedSimilarity, Details: details}, nil
	}

	return Result{}, wrapError("compute", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, algorithm))
}

// round applies the configured precision, if any.
func (ss *StringSimilarity) round(score float64) float64 {
	if ss.config.Precision < 0 {
		return score
	}
	factor := math.Pow(10, float64(ss.config.Precision))
	return math.Round(score*factor) / factor
}

// withPortsLogger installs a ports.Logger directly, bypassing the l adapter.
func withPortsLogger(lg ports.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = lg
	}
}

// ComputeWithDefaults evaluates one algorithm with the default configuration
// and a silent logger.
func ComputeWithDefaults(algorithm Algorithm, a, b string) (Result, error) {
	ss, err := New(withPortsLogger(silentLogger{}))
	if err != nil {
		return Result{}, err
	}
	return ss.Compute(context.Background(), algorithm, a, b)
}
