package engine

import (
	"math"
	"strings"

	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
)

// polarity counts positive and negative terms. A negator up to two words before a term flips it
func (e *Engine) polarity(text string) (pos, neg int) {
	norm := e.plain.Normalize(text)
	matches := e.lex.Scan(norm, "sentiment")
	for i, m := range matches {
		if m.Term.Class == "negator" {
			continue
		}
		flip := false
		if i > 0 && matches[i-1].Term.Class == "negator" {
			gap := norm[matches[i-1].End:m.Start]
			flip = len(strings.Fields(gap)) <= 2
		}
		positive := m.Term.Class == "positive"
		if flip {
			positive = !positive
		}
		if positive {
			pos++
		} else {
			neg++
		}
	}
	return pos, neg
}

// Sentiment classifies text from its lexicon polarity. Scores sum to one
func (e *Engine) Sentiment(text string) (cdom.SentimentType, cdom.SentimentScore) {
	pos, neg := e.polarity(text)
	return sentimentOf(pos, neg)
}

func sentimentOf(pos, neg int) (cdom.SentimentType, cdom.SentimentScore) {
	mk := func(p, n, neu, mix float64) cdom.SentimentScore {
		return cdom.SentimentScore{Positive: score(p), Negative: score(n), Neutral: score(neu), Mixed: score(mix)}
	}
	total := pos + neg
	switch {
	case total == 0:
		return cdom.SentimentTypeNeutral, mk(0.05, 0.05, 0.88, 0.02)
	case pos > 0 && neg > 0 && 2*min(pos, neg) >= max(pos, neg):
		return cdom.SentimentTypeMixed, mk(0.13, 0.13, 0.04, 0.7)
	}

	conf := math.Min(0.95, 0.6+0.35*math.Abs(float64(pos-neg))/float64(total))
	rest := 1 - conf
	if pos > neg {
		return cdom.SentimentTypePositive, mk(conf, rest*0.4, rest*0.5, rest*0.1)
	}
	return cdom.SentimentTypeNegative, mk(rest*0.4, conf, rest*0.5, rest*0.1)
}

// mentionSentiment is the sentiment of the sentence a mention sits in
func (e *Engine) mentionSentiment(sentence string) *cdom.MentionSentiment {
	st, sc := e.Sentiment(sentence)
	return &cdom.MentionSentiment{Sentiment: ptr.To(st), SentimentScore: &sc}
}
