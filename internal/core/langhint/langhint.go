// Package langhint guesses the language of a text from the scripts of its letters
// and, for Latin text, from a handful of function words
package langhint

import (
	"sort"
	"strings"
	"unicode"
)

// Guess is one candidate language with its share of the evidence
type Guess struct {
	Lang  string
	Score float64
}

type scriptCount struct {
	name  string
	table *unicode.RangeTable
	n     int
}

// Script returns the predominant script name and the number of letters seen.
// Specific scripts win ties over Latin
func Script(s string) (string, int) {
	counts, total := countScripts(s)
	best := -1
	for i := range counts {
		if counts[i].n > 0 && (best < 0 || counts[i].n > counts[best].n) {
			best = i
		}
	}
	if best < 0 {
		return "", total
	}
	return counts[best].name, total
}

func countScripts(s string) ([]scriptCount, int) {
	// order is the tie break
	counts := []scriptCount{
		{name: "Hiragana", table: unicode.Hiragana},
		{name: "Katakana", table: unicode.Katakana},
		{name: "Hangul", table: unicode.Hangul},
		{name: "Han", table: unicode.Han},
		{name: "Arabic", table: unicode.Arabic},
		{name: "Hebrew", table: unicode.Hebrew},
		{name: "Thai", table: unicode.Thai},
		{name: "Greek", table: unicode.Greek},
		{name: "Cyrillic", table: unicode.Cyrillic},
		{name: "Georgian", table: unicode.Georgian},
		{name: "Armenian", table: unicode.Armenian},
		{name: "Devanagari", table: unicode.Devanagari},
		{name: "Latin", table: unicode.Latin},
	}
	total := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		for i := range counts {
			if unicode.Is(counts[i].table, r) {
				counts[i].n++
				break
			}
		}
	}
	return counts, total
}

// scriptLang maps scripts with a low-ambiguity language
var scriptLang = map[string]string{
	"Hangul":     "ko",
	"Arabic":     "ar",
	"Hebrew":     "he",
	"Thai":       "th",
	"Greek":      "el",
	"Cyrillic":   "ru",
	"Georgian":   "ka",
	"Armenian":   "hy",
	"Devanagari": "hi",
}

// Rank returns candidate languages ordered by score, best first.
// Scores sum to at most 1; text without letters yields nil
func Rank(s string) []Guess {
	counts, total := countScripts(s)
	if total == 0 {
		return nil
	}

	scores := map[string]float64{}
	kana := 0
	for _, c := range counts {
		if c.name == "Hiragana" || c.name == "Katakana" {
			kana += c.n
		}
	}
	for _, c := range counts {
		if c.n == 0 {
			continue
		}
		share := float64(c.n) / float64(total)
		switch c.name {
		case "Hiragana", "Katakana":
			scores["ja"] += share
		case "Han":
			// Han inside kana text is Japanese
			if kana > 0 {
				scores["ja"] += share
			} else {
				scores["zh"] += share
			}
		case "Latin":
			for lang, w := range latinSplit(s) {
				scores[lang] += share * w
			}
		default:
			if lang, ok := scriptLang[c.name]; ok {
				scores[lang] += share
			}
		}
	}

	out := make([]Guess, 0, len(scores))
	for lang, sc := range scores {
		if sc < 0.01 {
			continue
		}
		out = append(out, Guess{Lang: lang, Score: sc})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Lang < out[j].Lang
	})
	return out
}

// latinSplit distributes Latin evidence across languages by function word hits.
// No hits means English
func latinSplit(s string) map[string]float64 {
	hits := map[string]int{}
	sum := 0
	for _, w := range Words(s) {
		for lang, set := range functionWords {
			if _, ok := set[w]; ok {
				hits[lang]++
				sum++
			}
		}
	}
	if sum == 0 {
		return map[string]float64{"en": 1}
	}
	out := make(map[string]float64, len(hits))
	for lang, n := range hits {
		out[lang] = float64(n) / float64(sum)
	}
	return out
}

// Words splits s into lowercased letter runs
func Words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

// IsFunctionWord reports whether w is a closed-class word of lang
func IsFunctionWord(lang, w string) bool {
	set, ok := functionWords[lang]
	if !ok {
		set = functionWords["en"]
	}
	_, hit := set[strings.ToLower(w)]
	return hit
}

func set(ws ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		m[w] = struct{}{}
	}
	return m
}

var functionWords = map[string]map[string]struct{}{
	"en": set("the", "and", "is", "of", "to", "in", "that", "it", "with", "for", "this", "was", "are", "a", "an",
		"on", "at", "by", "or", "be", "as", "from", "but", "not", "have", "has", "i", "you", "we", "they"),
	"es": set("el", "la", "los", "las", "de", "que", "y", "es", "en", "por", "con", "una", "para", "del", "un",
		"se", "no", "muy", "pero", "como"),
	"fr": set("le", "la", "les", "de", "et", "est", "un", "une", "des", "pour", "que", "dans", "avec", "du", "ce",
		"je", "nous", "vous", "pas", "très"),
	"de": set("der", "die", "das", "und", "ist", "nicht", "ein", "eine", "zu", "mit", "den", "von", "ich", "auf",
		"sehr", "wir", "sie", "es", "im", "dem"),
	"it": set("il", "lo", "la", "di", "che", "e", "è", "un", "una", "per", "con", "non", "sono", "del", "gli",
		"molto", "questo", "della", "ma", "anche"),
	"pt": set("o", "a", "os", "as", "de", "que", "e", "é", "um", "uma", "para", "com", "não", "do", "da",
		"muito", "em", "isso", "mas", "também"),
}
