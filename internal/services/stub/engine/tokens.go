package engine

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokNumber
	tokPunct
)

type token struct {
	Start, End int
	Text       string
	Kind       tokenKind
	// SentenceStart marks the first token of a sentence
	SentenceStart bool
}

var tokenPattern = regexp.MustCompile(`\p{L}[\p{L}\p{M}'’]*|\p{N}+(?:[.,:]\p{N}+)*|[^\s\p{L}\p{N}]`)

func tokenize(s string) []token {
	locs := tokenPattern.FindAllStringIndex(s, -1)
	out := make([]token, 0, len(locs))
	start := true
	for _, l := range locs {
		t := token{Start: l[0], End: l[1], Text: s[l[0]:l[1]], SentenceStart: start}
		r, _ := utf8.DecodeRuneInString(t.Text)
		switch {
		case unicode.IsLetter(r):
			t.Kind = tokWord
		case unicode.IsNumber(r):
			t.Kind = tokNumber
		default:
			t.Kind = tokPunct
		}
		start = t.Kind == tokPunct && (t.Text == "." || t.Text == "!" || t.Text == "?")
		if t.Kind == tokPunct && !start && t.SentenceStart {
			// leading quotes and brackets do not end the sentence start
			start = true
		}
		out = append(out, t)
	}
	return out
}

func capitalized(w string) bool {
	r, _ := utf8.DecodeRuneInString(w)
	return unicode.IsUpper(r)
}

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// sentences returns byte spans of the sentences of s
func sentences(s string) [][2]int {
	locs := sentencePattern.FindAllStringIndex(s, -1)
	out := make([][2]int, 0, len(locs))
	for _, l := range locs {
		out = append(out, [2]int{l[0], l[1]})
	}
	return out
}
