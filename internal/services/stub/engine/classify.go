package engine

import (
	"sort"

	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
)

// OtherClass is reported when no topic term occurs
const OtherClass = "OTHER"

type classScore struct {
	name  string
	score float64
}

func (e *Engine) topics(text string) []classScore {
	hits := map[string]int{}
	total := 0
	for _, m := range e.lex.Scan(e.plain.Normalize(text), "topic") {
		hits[m.Term.Class]++
		total++
	}
	if total == 0 {
		return []classScore{{name: OtherClass, score: 0.9}}
	}
	out := make([]classScore, 0, len(hits))
	for name, n := range hits {
		out = append(out, classScore{name: name, score: float64(n) / float64(total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].name < out[j].name
	})
	return out
}

// Classes is the multi-class result: every topic seen, best first
func (e *Engine) Classes(text string) []cdom.DocumentClass {
	ts := e.topics(text)
	out := make([]cdom.DocumentClass, 0, len(ts))
	for _, t := range ts {
		out = append(out, cdom.DocumentClass{Name: ptr.To(t.name), Score: score(t.score)})
	}
	return out
}

// Labels is the multi-label result: each topic scored on its own
func (e *Engine) Labels(text string) []cdom.DocumentLabel {
	ts := e.topics(text)
	out := make([]cdom.DocumentLabel, 0, len(ts))
	for _, t := range ts {
		sc := t.score
		if t.name != OtherClass {
			sc = min(0.99, 0.5+t.score/2)
		}
		out = append(out, cdom.DocumentLabel{Name: ptr.To(t.name), Score: score(sc)})
	}
	return out
}
