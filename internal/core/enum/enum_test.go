package enum_test

import (
	"testing"

	"comprehend/internal/core/enum"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/testkit"
)

type color string

const (
	colorRed  color = "RED"
	colorDark color = "DARK_BLUE"
)

func (color) Values() []color { return []color{colorRed, colorDark} }

func TestParseRoundTrip(t *testing.T) {
	for _, v := range colorRed.Values() {
		got, err := enum.Parse[color](enum.Wire(v))
		if err != nil {
			t.Fatalf("Parse(%q) err = %v", v, err)
		}
		if got != v {
			t.Fatalf("Parse(%q) = %q", v, got)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, tok := range []string{"", "red", "Red", " RED", "RED ", "GREEN"} {
		_, err := enum.Parse[color](tok)
		if err == nil {
			t.Fatalf("Parse(%q) should fail", tok)
		}
		if !perr.IsCode(err, perr.ErrorCodeInvalidEnum) {
			t.Fatalf("Parse(%q) code = %v", tok, perr.CodeOf(err))
		}
		ive, ok := enum.IsInvalid(err)
		if !ok {
			t.Fatalf("IsInvalid(%v) = false", err)
		}
		if ive.Token != tok || ive.Enum != "color" {
			t.Fatalf("detail = %+v", ive)
		}
	}
}

func TestParseRef(t *testing.T) {
	_, err := enum.ParseRef[color](nil)
	ive, ok := enum.IsInvalid(err)
	if !ok || !ive.Null {
		t.Fatalf("ParseRef(nil) = %v", err)
	}
	testkit.MustContain(t, err.Error(), "null")

	tok := "DARK_BLUE"
	if v, err := enum.ParseRef[color](&tok); err != nil || v != colorDark {
		t.Fatalf("ParseRef = %q, %v", v, err)
	}
}

func TestKnownAndTokens(t *testing.T) {
	if !enum.Known(colorRed) || enum.Known(color("PURPLE")) {
		t.Fatalf("Known mismatch")
	}
	toks := enum.Tokens[color]()
	if len(toks) != 2 || toks[0] != "RED" || toks[1] != "DARK_BLUE" {
		t.Fatalf("Tokens = %v", toks)
	}
	// callers cannot corrupt the vocabulary through the returned slice
	toks[0] = "X"
	if enum.Tokens[color]()[0] != "RED" {
		t.Fatalf("Tokens leaked internal state")
	}
}

func TestMustParse(t *testing.T) {
	testkit.MustPanic(t, func() { _ = enum.MustParse[color]("nope") })
	testkit.MustNotPanic(t, func() { _ = enum.MustParse[color]("RED") })
}
