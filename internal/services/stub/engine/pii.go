package engine

import (
	"regexp"
	"sort"

	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
)

type piiRule struct {
	kind  cdom.PiiEntityType
	re    *regexp.Regexp
	check func(string) bool
	score float64
}

// order is priority when spans overlap
var piiRules = []piiRule{
	{kind: cdom.PiiEntityTypeEmail, re: regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`), score: 0.99},
	{kind: cdom.PiiEntityTypeUrl, re: regexp.MustCompile(`https?://[^\s]+`), score: 0.99},
	{kind: cdom.PiiEntityTypeAwsAccessKey, re: regexp.MustCompile(`\b(?:AKIA|ASIA)[0-9A-Z]{16}\b`), score: 0.99},
	{kind: cdom.PiiEntityTypeSsn, re: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), score: 0.98},
	{kind: cdom.PiiEntityTypeCreditDebitNumber, re: regexp.MustCompile(`\b(?:\d{4}[ -]?){3}\d{4}\b`), check: luhn, score: 0.98},
	{kind: cdom.PiiEntityTypeMacAddress, re: regexp.MustCompile(`\b(?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}\b`), score: 0.97},
	{kind: cdom.PiiEntityTypeIpAddress, re: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), score: 0.97},
	{kind: cdom.PiiEntityTypeDateTime, re: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}(?:[T ]\d{2}:\d{2}(?::\d{2})?)?\b`), score: 0.95},
	{kind: cdom.PiiEntityTypePhone, re: regexp.MustCompile(`(?:\+?1[ .-]?)?\(?\b\d{3}\)?[ .-]?\d{3}[ .-]?\d{4}\b`), score: 0.95},
	{kind: cdom.PiiEntityTypeAddress, re: regexp.MustCompile(`\b\d{1,5}\s+(?:[A-Z][a-z]+\s)+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive)\b\.?`), score: 0.9},
	{kind: cdom.PiiEntityTypeAge, re: regexp.MustCompile(`\b\d{1,3}(?:\s?years old|-year-old)\b`), score: 0.9},
}

type piiSpan struct {
	start, end int
	kind       cdom.PiiEntityType
	score      float64
}

func (e *Engine) piiSpans(text string) []piiSpan {
	var cands []span
	kinds := map[int]cdom.PiiEntityType{}
	for prio, r := range piiRules {
		for _, l := range r.re.FindAllStringIndex(text, -1) {
			if r.check != nil && !r.check(text[l[0]:l[1]]) {
				continue
			}
			cands = append(cands, span{start: l[0], end: l[1], score: r.score, prio: prio})
			kinds[prio] = r.kind
		}
	}
	// people are names
	for _, p := range e.entitySpans(text) {
		if p.kind == cdom.EntityTypePerson {
			cands = append(cands, span{start: p.start, end: p.end, score: p.score, prio: len(piiRules)})
			kinds[len(piiRules)] = cdom.PiiEntityTypeName
		}
	}
	kept := resolve(cands)
	out := make([]piiSpan, 0, len(kept))
	for _, k := range kept {
		out = append(out, piiSpan{start: k.start, end: k.end, kind: kinds[k.prio], score: k.score})
	}
	return out
}

// PiiEntities lists PII spans in text order
func (e *Engine) PiiEntities(text string) []cdom.PiiEntity {
	idx := indexOf(text)
	spans := e.piiSpans(text)
	out := make([]cdom.PiiEntity, 0, len(spans))
	for _, s := range spans {
		b, en := idx.span(s.start, s.end)
		out = append(out, cdom.PiiEntity{Score: score(s.score), Type: ptr.To(s.kind), BeginOffset: b, EndOffset: en})
	}
	return out
}

// PiiLabels lists each PII category present once, with its best score, in name order
func (e *Engine) PiiLabels(text string) []cdom.EntityLabel {
	best := map[cdom.PiiEntityType]float64{}
	for _, s := range e.piiSpans(text) {
		best[s.kind] = max(best[s.kind], s.score)
	}
	out := make([]cdom.EntityLabel, 0, len(best))
	for k, sc := range best {
		out = append(out, cdom.EntityLabel{Name: ptr.To(k), Score: score(sc)})
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].Name < *out[j].Name })
	return out
}

// luhn validates a card number, ignoring spaces and dashes
func luhn(s string) bool {
	sum, n := 0, 0
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c == ' ' || c == '-' {
			continue
		}
		d := int(c - '0')
		if n%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		n++
	}
	return n >= 13 && sum%10 == 0
}
