// Package normalize folds text into a canonical lowercase form for lexicon scoring.
// Stages run in order: Sanitize, compatibility decomposition, mark and format
// character removal, case fold, width fold, recomposition, optional leet fold,
// whitespace collapse
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Option configures a Normalizer
type Option func(*Normalizer)

// WithLeet folds common digit and symbol lookalikes onto letters (4->a, 0->o, $->s, ...)
func WithLeet() Option { return func(n *Normalizer) { n.leet = true } }

// Normalizer is safe for concurrent use
type Normalizer struct {
	leet bool
}

// transformer chains are stateful, so each call borrows its own
var chains = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			cases.Fold(),
			width.Fold,
			norm.NFC,
		)
	},
}

// New constructs a Normalizer
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Normalize returns the folded form of s. Offsets into the result do not map back onto s
func (n *Normalizer) Normalize(s string) string {
	s = Sanitize(s)
	if s == "" {
		return ""
	}

	tr := chains.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chains.Put(tr)
	if err != nil {
		out = strings.ToLower(s)
	}

	if n.leet {
		out = strings.Map(leet, out)
	}
	return strings.Join(strings.Fields(out), " ")
}

func leet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '0':
		return 'o'
	case '1', '!':
		return 'i'
	case '3':
		return 'e'
	case '5', '$':
		return 's'
	case '7':
		return 't'
	}
	return r
}
