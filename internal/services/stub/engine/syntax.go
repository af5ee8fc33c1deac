package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
)

var suffixTags = []struct {
	suffix string
	tag    cdom.PartOfSpeechTagType
}{
	{"ly", cdom.PartOfSpeechTagTypeAdv},
	{"ing", cdom.PartOfSpeechTagTypeVerb},
	{"ed", cdom.PartOfSpeechTagTypeVerb},
	{"ous", cdom.PartOfSpeechTagTypeAdj},
	{"ful", cdom.PartOfSpeechTagTypeAdj},
	{"ive", cdom.PartOfSpeechTagTypeAdj},
	{"able", cdom.PartOfSpeechTagTypeAdj},
}

// Syntax splits text into tokens and tags each with a part of speech
func (e *Engine) Syntax(text string) []cdom.SyntaxToken {
	idx := indexOf(text)
	toks := tokenize(text)
	out := make([]cdom.SyntaxToken, 0, len(toks))
	for i, t := range toks {
		tag, sc := e.tag(t)
		b, en := idx.span(t.Start, t.End)
		out = append(out, cdom.SyntaxToken{
			TokenId:      ptr.To(int32(i + 1)),
			Text:         ptr.To(t.Text),
			BeginOffset:  b,
			EndOffset:    en,
			PartOfSpeech: &cdom.PartOfSpeechTag{Tag: ptr.To(tag), Score: score(sc)},
		})
	}
	return out
}

func (e *Engine) tag(t token) (cdom.PartOfSpeechTagType, float64) {
	switch t.Kind {
	case tokNumber:
		return cdom.PartOfSpeechTagTypeNum, 0.99
	case tokPunct:
		r, _ := utf8.DecodeRuneInString(t.Text)
		if unicode.IsPunct(r) {
			return cdom.PartOfSpeechTagTypePunct, 0.99
		}
		return cdom.PartOfSpeechTagTypeSym, 0.95
	}
	if cls, ok := e.lex.Lookup("syntax", t.Text); ok {
		return cdom.PartOfSpeechTagType(cls), 0.99
	}
	if capitalized(t.Text) && !t.SentenceStart {
		return cdom.PartOfSpeechTagTypePropn, 0.9
	}
	lw := strings.ToLower(t.Text)
	for _, s := range suffixTags {
		if len(lw) > len(s.suffix)+2 && strings.HasSuffix(lw, s.suffix) {
			return s.tag, 0.8
		}
	}
	return cdom.PartOfSpeechTagTypeNoun, 0.7
}
