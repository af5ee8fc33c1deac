// Package engine produces deterministic analysis results for the stub.
// Nothing here is inference: languages come from script and function word counts,
// everything else from the embedded lexicon and a few patterns
package engine

import (
	"math"
	"unicode/utf8"

	"comprehend/internal/core/lexicon"
	"comprehend/internal/core/normalize"
	"comprehend/internal/platform/ptr"
)

// Engine is safe for concurrent use
type Engine struct {
	lex   *lexicon.Lexicon
	plain *normalize.Normalizer
	leet  *normalize.Normalizer
}

// New returns an engine over lex
func New(lex *lexicon.Lexicon) *Engine {
	return &Engine{
		lex:   lex,
		plain: normalize.New(),
		leet:  normalize.New(normalize.WithLeet()),
	}
}

// charIndex maps byte offsets of a text onto character offsets
type charIndex []int32

func indexOf(s string) charIndex {
	idx := make(charIndex, len(s)+1)
	n := int32(-1)
	for i := 0; i < len(s); i++ {
		if utf8.RuneStart(s[i]) {
			n++
		}
		idx[i] = n
	}
	idx[len(s)] = n + 1
	return idx
}

func (c charIndex) span(start, end int) (*int32, *int32) {
	return ptr.To(c[start]), ptr.To(c[end])
}

// score rounds to four decimals so results are stable on the wire
func score(f float64) *float32 {
	return ptr.To(float32(math.Round(f*1e4) / 1e4))
}
