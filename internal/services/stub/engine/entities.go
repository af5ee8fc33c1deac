package engine

import (
	"regexp"
	"sort"
	"strings"

	"comprehend/internal/core/langhint"
	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
)

var (
	datePattern = regexp.MustCompile(`(?i)\b(?:\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4}|` +
		`(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?(?:,\s*\d{4})?|` +
		`monday|tuesday|wednesday|thursday|friday|saturday|sunday|today|tomorrow|yesterday)\b`)
	quantityPattern = regexp.MustCompile(`(?i)\$\d+(?:[.,]\d+)*|\b\d+(?:[.,]\d+)*(?:\s?%|\s?(?:percent|kg|km|miles|dollars|euros|usd|eur|items|people|years|hours|minutes|days)\b)`)
)

type span struct {
	start, end int
	kind       cdom.EntityType
	score      float64
	prio       int
}

// resolve keeps the highest priority spans that do not overlap, in text order
func resolve(cands []span) []span {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].prio != cands[j].prio {
			return cands[i].prio < cands[j].prio
		}
		return cands[i].start < cands[j].start
	})
	var kept []span
	for _, c := range cands {
		clash := false
		for _, k := range kept {
			if c.start < k.end && k.start < c.end {
				clash = true
				break
			}
		}
		if !clash {
			kept = append(kept, c)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].start < kept[j].start })
	return kept
}

func (e *Engine) entitySpans(text string) []span {
	var cands []span
	for _, m := range e.lex.Scan(text, "entity") {
		cands = append(cands, span{start: m.Start, end: m.End, kind: cdom.EntityType(m.Term.Class), score: 0.99, prio: 0})
	}
	cands = append(cands, e.people(text)...)
	for _, l := range datePattern.FindAllStringIndex(text, -1) {
		cands = append(cands, span{start: l[0], end: l[1], kind: cdom.EntityTypeDate, score: 0.95, prio: 2})
	}
	for _, l := range quantityPattern.FindAllStringIndex(text, -1) {
		cands = append(cands, span{start: l[0], end: l[1], kind: cdom.EntityTypeQuantity, score: 0.93, prio: 3})
	}
	return resolve(cands)
}

// people finds an honorific followed by capitalized words, then runs of two or three capitalized words
func (e *Engine) people(text string) []span {
	toks := tokenize(text)
	var out []span
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != tokWord || !capitalized(t.Text) {
			continue
		}
		if _, ok := e.lex.Lookup("honorific", t.Text); ok {
			j := i + 1
			if j < len(toks) && toks[j].Text == "." {
				j++
			}
			end := j
			for end < len(toks) && end < j+2 && toks[end].Kind == tokWord && capitalized(toks[end].Text) {
				end++
			}
			if end > j {
				out = append(out, span{start: t.Start, end: toks[end-1].End, kind: cdom.EntityTypePerson, score: 0.97, prio: 1})
				i = end - 1
			}
			continue
		}
		end := i
		for end < len(toks) && end < i+3 && toks[end].Kind == tokWord && capitalized(toks[end].Text) &&
			(end == i || toks[end].Start == toks[end-1].End+1) {
			end++
		}
		if end-i >= 2 {
			out = append(out, span{start: t.Start, end: toks[end-1].End, kind: cdom.EntityTypePerson, score: 0.8, prio: 4})
			i = end - 1
		}
	}
	return out
}

// Entities lists named entities in text order
func (e *Engine) Entities(text string) []cdom.Entity {
	idx := indexOf(text)
	spans := e.entitySpans(text)
	out := make([]cdom.Entity, 0, len(spans))
	for _, s := range spans {
		b, en := idx.span(s.start, s.end)
		out = append(out, cdom.Entity{
			Score:       score(s.score),
			Type:        ptr.To(s.kind),
			Text:        ptr.To(text[s.start:s.end]),
			BeginOffset: b,
			EndOffset:   en,
		})
	}
	return out
}

// KeyPhrases returns runs of content words, each with a directly preceding determiner
func (e *Engine) KeyPhrases(text string, lang cdom.LanguageCode) []cdom.KeyPhrase {
	idx := indexOf(text)
	toks := tokenize(text)
	var out []cdom.KeyPhrase
	emit := func(from, to int) {
		if to <= from {
			return
		}
		letters := 0
		for _, t := range toks[from:to] {
			letters += len(t.Text)
		}
		if letters < 3 {
			return
		}
		start := from
		if start > 0 {
			if cls, ok := e.lex.Lookup("syntax", toks[start-1].Text); ok && cls == "DET" {
				start--
			}
		}
		b, en := idx.span(toks[start].Start, toks[to-1].End)
		sc := 0.9
		if to-from > 1 {
			sc = 0.98
		}
		out = append(out, cdom.KeyPhrase{
			Score:       score(sc),
			Text:        ptr.To(text[toks[start].Start:toks[to-1].End]),
			BeginOffset: b,
			EndOffset:   en,
		})
	}

	run := -1
	for i, t := range toks {
		content := t.Kind != tokPunct && !langFunctionWord(string(lang), t.Text) && !e.closedClass(t.Text)
		switch {
		case content && run < 0:
			run = i
		case content && i-run == 4:
			emit(run, i)
			run = i
		case !content && run >= 0:
			emit(run, i)
			run = -1
		}
	}
	if run >= 0 {
		emit(run, len(toks))
	}
	return out
}

func (e *Engine) closedClass(w string) bool {
	cls, ok := e.lex.Lookup("syntax", w)
	return ok && cls != "ADV" && cls != "INTJ"
}

func langFunctionWord(lang, w string) bool {
	base, _, _ := strings.Cut(lang, "-")
	return langhint.IsFunctionWord(base, w)
}
