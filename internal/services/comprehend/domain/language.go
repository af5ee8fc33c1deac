package domain

import "golang.org/x/text/language"

// Tag returns the BCP 47 tag for c. Undefined codes yield language.Und
func (c LanguageCode) Tag() language.Tag {
	t, err := language.Parse(string(c))
	if err != nil {
		return language.Und
	}
	return t
}

// Tag returns the BCP 47 tag for c
func (c SyntaxLanguageCode) Tag() language.Tag {
	t, err := language.Parse(string(c))
	if err != nil {
		return language.Und
	}
	return t
}

// Tag parses the detected RFC 5646 code; a missing or malformed code yields language.Und
func (d DominantLanguage) Tag() language.Tag {
	if d.LanguageCode == nil {
		return language.Und
	}
	t, err := language.Parse(*d.LanguageCode)
	if err != nil {
		return language.Und
	}
	return t
}

// LanguageCodeFor returns the closest defined LanguageCode for t, if any
func LanguageCodeFor(t language.Tag) (LanguageCode, bool) {
	var zero LanguageCode
	codes := zero.Values()
	tags := make([]language.Tag, len(codes))
	for i, c := range codes {
		tags[i] = c.Tag()
	}
	_, idx, conf := language.NewMatcher(tags).Match(t)
	if conf < language.High {
		return "", false
	}
	return codes[idx], true
}
