package engine

import (
	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
)

// Toxic scores every toxicity category for one segment. Matching runs on the
// leet-folded text, so "1d!0t" counts as "idiot"
func (e *Engine) Toxic(text string) cdom.ToxicLabels {
	hits := map[string]int{}
	for _, m := range e.lex.Scan(e.leet.Normalize(text), "toxic") {
		hits[m.Term.Class]++
	}

	var zero cdom.ToxicContentType
	labels := make([]cdom.ToxicContent, 0, len(zero.Values()))
	overall := 0.02
	for _, k := range zero.Values() {
		sc := 0.01
		if n := hits[string(k)]; n > 0 {
			sc = min(0.99, 0.5+0.25*float64(n))
		}
		overall = max(overall, sc)
		labels = append(labels, cdom.ToxicContent{Name: ptr.To(k), Score: score(sc)})
	}
	return cdom.ToxicLabels{Labels: labels, Toxicity: score(overall)}
}
