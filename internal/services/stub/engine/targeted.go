package engine

import (
	"strings"

	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
)

func targetedType(t cdom.EntityType) cdom.TargetedSentimentEntityType {
	switch t {
	case cdom.EntityTypePerson, cdom.EntityTypeLocation, cdom.EntityTypeOrganization,
		cdom.EntityTypeCommercialItem, cdom.EntityTypeEvent, cdom.EntityTypeDate, cdom.EntityTypeQuantity:
		return cdom.TargetedSentimentEntityType(t)
	}
	return cdom.TargetedSentimentEntityTypeOther
}

// TargetedSentiment groups entity mentions by their case-folded text. Each mention
// carries the sentiment of its sentence; the first mention of a group is its descriptive one
func (e *Engine) TargetedSentiment(text string) []cdom.TargetedSentimentEntity {
	idx := indexOf(text)
	sents := sentences(text)
	sentenceOf := func(at int) string {
		for _, s := range sents {
			if at >= s[0] && at < s[1] {
				return text[s[0]:s[1]]
			}
		}
		return text
	}

	var out []cdom.TargetedSentimentEntity
	group := map[string]int{}
	for _, s := range e.entitySpans(text) {
		surface := text[s.start:s.end]
		b, en := idx.span(s.start, s.end)
		m := cdom.TargetedSentimentMention{
			Score:            score(s.score),
			GroupScore:       score(1),
			Text:             ptr.To(surface),
			Type:             ptr.To(targetedType(s.kind)),
			MentionSentiment: e.mentionSentiment(sentenceOf(s.start)),
			BeginOffset:      b,
			EndOffset:        en,
		}
		key := strings.ToLower(surface)
		gi, ok := group[key]
		if !ok {
			gi = len(out)
			group[key] = gi
			out = append(out, cdom.TargetedSentimentEntity{DescriptiveMentionIndex: []int32{0}})
		}
		out[gi].Mentions = append(out[gi].Mentions, m)
	}
	return out
}
