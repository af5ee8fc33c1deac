package lexicon

import (
	"testing"

	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/testkit"
)

const small = `
version: 2
groups:
  entity:
    LOCATION: [new york, york, "  Paris "]
    ORGANIZATION: [acme]
  sentiment:
    positive: [good, good]
`

func TestParse(t *testing.T) {
	l, err := Parse([]byte(small))
	testkit.MustNoErr(t, err)
	testkit.MustEqual(t, 2, l.Version)
	testkit.MustEqual(t, 5, l.Len(), "duplicates collapse")
	testkit.MustEqual(t, []string{"LOCATION", "ORGANIZATION"}, l.Classes("entity"))
	testkit.MustEmpty(t, l.Classes("nope"))

	cls, ok := l.Lookup("entity", "PARIS")
	testkit.MustTrue(t, ok)
	testkit.MustEqual(t, "LOCATION", cls)
	_, ok = l.Lookup("sentiment", "paris")
	testkit.MustFalse(t, ok)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("groups: [1, 2"))
	testkit.MustTrue(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	_, err = Parse([]byte("version: 1\n"))
	testkit.MustTrue(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestScanLongestLeftmostWholeWords(t *testing.T) {
	l, err := Parse([]byte(small))
	testkit.MustNoErr(t, err)

	text := "Acme moved to New York; yorkshire is not York. Good!"
	got := l.Scan(text)
	testkit.MustLen(t, got, 4)

	testkit.MustEqual(t, "acme", got[0].Term.Text)
	testkit.MustEqual(t, "New York", text[got[1].Start:got[1].End])
	testkit.MustEqual(t, "LOCATION", got[1].Term.Class)
	testkit.MustEqual(t, "York", text[got[2].Start:got[2].End])
	testkit.MustEqual(t, "Good", text[got[3].Start:got[3].End])
}

func TestScanGroupFilterAndUnicodeBoundaries(t *testing.T) {
	l, err := Parse([]byte(small))
	testkit.MustNoErr(t, err)

	got := l.Scan("good acme", "sentiment")
	testkit.MustLen(t, got, 1)
	testkit.MustEqual(t, "sentiment", got[0].Term.Group)

	testkit.MustEmpty(t, l.Scan("ágood"), "a letter before the term is not a boundary")
	got = l.Scan("¡good!")
	testkit.MustLen(t, got, 1)
	testkit.MustEqual(t, 2, got[0].Start, "offsets are bytes into the input")
}

func TestDefaultLexicon(t *testing.T) {
	l := MustDefault()
	again, err := Default()
	testkit.MustNoErr(t, err)
	testkit.MustTrue(t, l == again, "Default is built once")

	for _, g := range []string{"sentiment", "toxic", "entity", "topic", "syntax"} {
		testkit.MustNotEmpty(t, l.Classes(g), g)
	}
	cls, ok := l.Lookup("syntax", "the")
	testkit.MustTrue(t, ok)
	testkit.MustEqual(t, "DET", cls)

	hits := l.Scan("You are an idiot, shut up", "toxic")
	testkit.MustLen(t, hits, 2)
	testkit.MustEqual(t, "INSULT", hits[0].Term.Class)
	testkit.MustEqual(t, "HARASSMENT_OR_ABUSE", hits[1].Term.Class)
}
