package phonetic

import (
	"errors"

	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/core/editdist"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// ErrUnknownMode is returned when the phonetic scoring mode is not recognized.
var ErrUnknownMode = errors.New("unknown phonetic mode")

// Engine scores two inputs by the phonetic codes of their words.
type Engine struct {
	encoder   ports.PhoneticEncoder
	tokenizer ports.Tokenizer
}

// NewEngine creates a phonetic engine over the given encoder and word tokenizer.
func NewEngine(encoder ports.PhoneticEncoder, tokenizer ports.Tokenizer) *Engine {
	return &Engine{encoder: encoder, tokenizer: tokenizer}
}

// Similarity splits both inputs into words, scores each corresponding word
// pair by phonetic code, and returns the arithmetic mean. The shorter side is
// padded with empty-code placeholders, which score zero against any real
// code. Two wordless inputs are vacuously identical.
func (e *Engine) Similarity(a, b string, mode domain.PhoneticMode) (float64, error) {
	if mode != domain.ExactMode && mode != domain.EditMode {
		return 0, ErrUnknownMode
	}

	wordsA := e.tokenizer.Tokenize(a)
	wordsB := e.tokenizer.Tokenize(b)

	if len(wordsA) == 0 && len(wordsB) == 0 {
		return 1.0, nil
	}
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0, nil
	}

	pairs := len(wordsA)
	if len(wordsB) > pairs {
		pairs = len(wordsB)
	}

	var total float64
	for i := 0; i < pairs; i++ {
		var codeA, codeB string
		if i < len(wordsA) {
			codeA = e.encoder.Encode(wordsA[i])
		}
		if i < len(wordsB) {
			codeB = e.encoder.Encode(wordsB[i])
		}
		total += scorePair(codeA, codeB, mode)
	}

	return total / float64(pairs), nil
}

// scorePair scores two phonetic codes. In exact mode equal codes score one;
// in edit mode the unit-cost edit distance over the codes is normalized to a
// similarity. An empty code paired with a real code scores zero either way.
func scorePair(codeA, codeB string, mode domain.PhoneticMode) float64 {
	if mode == domain.ExactMode {
		if codeA == codeB {
			return 1.0
		}
		return 0.0
	}
	d := editdist.Distance(codeA, codeB, editdist.DefaultCosts())
	return editdist.Similarity(d, len(codeA), len(codeB))
}
