package engine

import (
	"comprehend/internal/core/langhint"
	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
)

// DominantLanguage ranks candidate languages, best first. Text without letters has none
func (e *Engine) DominantLanguage(text string) []cdom.DominantLanguage {
	guesses := langhint.Rank(text)
	out := make([]cdom.DominantLanguage, 0, len(guesses))
	for _, g := range guesses {
		out = append(out, cdom.DominantLanguage{LanguageCode: ptr.To(g.Lang), Score: score(g.Score)})
	}
	return out
}
