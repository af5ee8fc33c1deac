// Package lexicon loads grouped word lists and finds whole-word occurrences of them in text.
// The embedded lexicon drives the stub's sentiment, toxicity, entity, topic and
// part-of-speech heuristics
package lexicon

import (
	_ "embed"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	perr "comprehend/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var embedded []byte

// Term is one lexicon entry
type Term struct {
	Text  string // lowercase, may contain spaces
	Group string // e.g. "sentiment", "toxic", "entity"
	Class string // e.g. "positive", "INSULT", "LOCATION"
}

// Match is a term found in a text. Start and End are byte offsets into the scanned text
type Match struct {
	Start int
	End   int
	Term  Term
}

// Lexicon is immutable after Parse and safe for concurrent use
type Lexicon struct {
	Version int
	terms   []Term
	ac      *automaton
	exact   map[string][]int // term text -> ids
	classes map[string][]string
}

type rawLexicon struct {
	Version int                            `yaml:"version"`
	Groups  map[string]map[string][]string `yaml:"groups"`
}

// Parse builds a lexicon from YAML of the form groups.<group>.<class>: [terms]
func Parse(b []byte) (*Lexicon, error) {
	var raw rawLexicon
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "lexicon: parse yaml")
	}
	if len(raw.Groups) == 0 {
		return nil, perr.InvalidArgf("lexicon: no groups")
	}

	l := &Lexicon{
		Version: raw.Version,
		ac:      newAutomaton(),
		exact:   map[string][]int{},
		classes: map[string][]string{},
	}
	seen := map[Term]bool{}
	for _, group := range sortedKeys(raw.Groups) {
		classes := raw.Groups[group]
		for _, class := range sortedKeys(classes) {
			l.classes[group] = append(l.classes[group], class)
			for _, w := range classes[class] {
				w = strings.Join(strings.Fields(strings.ToLower(w)), " ")
				if w == "" {
					continue
				}
				t := Term{Text: w, Group: group, Class: class}
				if seen[t] {
					continue
				}
				seen[t] = true
				id := len(l.terms)
				l.terms = append(l.terms, t)
				l.exact[w] = append(l.exact[w], id)
				l.ac.add([]byte(w), id)
			}
		}
	}
	l.ac.build()
	return l, nil
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the embedded lexicon, parsed once
func Default() (*Lexicon, error) {
	defaultOnce.Do(func() { defaultLex, defaultErr = Parse(embedded) })
	return defaultLex, defaultErr
}

// MustDefault is Default for program start up
func MustDefault() *Lexicon {
	l, err := Default()
	if err != nil {
		panic(err)
	}
	return l
}

// Len is the number of distinct terms
func (l *Lexicon) Len() int { return len(l.terms) }

// Classes lists the classes of group in sorted order
func (l *Lexicon) Classes(group string) []string {
	return append([]string(nil), l.classes[group]...)
}

// Lookup returns the class of word within group when the whole word is a term
func (l *Lexicon) Lookup(group, word string) (string, bool) {
	for _, id := range l.exact[strings.ToLower(word)] {
		if t := l.terms[id]; t.Group == group {
			return t.Class, true
		}
	}
	return "", false
}

// Scan finds whole-word terms of the given groups (all groups when none are named).
// Matching folds ASCII case only, so offsets stay valid for s. Overlaps resolve
// leftmost first, then longest
func (l *Lexicon) Scan(s string, groups ...string) []Match {
	want := func(string) bool { return true }
	if len(groups) > 0 {
		set := make(map[string]bool, len(groups))
		for _, g := range groups {
			set[g] = true
		}
		want = func(g string) bool { return set[g] }
	}

	text := asciiLower(s)
	var found []Match
	l.ac.scan(text, func(end, id int) {
		t := l.terms[id]
		if !want(t.Group) {
			return
		}
		start := end - len(t.Text)
		if !boundary(s, start, end) {
			return
		}
		found = append(found, Match{Start: start, End: end, Term: t})
	})

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Start != found[j].Start {
			return found[i].Start < found[j].Start
		}
		return found[i].End > found[j].End
	})
	out := found[:0]
	last := -1
	for _, m := range found {
		if m.Start < last {
			continue
		}
		out = append(out, m)
		last = m.End
	}
	return out
}

func asciiLower(s string) []byte {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return b
}

// isWord treats letters, digits, combining marks and connector punctuation as word runes
func isWord(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.In(r, unicode.Mn, unicode.Pc)
}

// boundary reports whether [start,end) is not glued to word runes on either side
func boundary(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWord(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWord(r) {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
