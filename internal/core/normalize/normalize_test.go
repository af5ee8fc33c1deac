package normalize

import "testing"

func TestNormalize(t *testing.T) {
	plain := New()
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"identity", "hello world", "hello world"},
		{"invalid bytes dropped", string([]byte{0xff, 'f', 'o', 'o', 0x80, ' ', 'b', 'a', 'r'}), "foo bar"},
		{"case fold", "GrEaT", "great"},
		{"zero widths removed", "g\u200bre\u200dat", "great"},
		{"combining marks removed", "cafe\u0301", "cafe"},
		{"precomposed accents stripped", "caf\u00e9", "cafe"},
		{"fullwidth folded", "\uff27\uff2f\uff2f\uff24 day", "good day"},
		{"ligature expanded", "o\ufb03ce", "office"},
		{"whitespace collapsed", "a\t\tb\nc   d ", "a b c d"},
		{"digits kept without leet", "r2d2", "r2d2"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		if got := plain.Normalize(c.in); got != c.out {
			t.Fatalf("%s: Normalize(%q) = %q, want %q", c.name, c.in, got, c.out)
		}
	}
}

func TestNormalizeLeet(t *testing.T) {
	n := New(WithLeet())
	if got := n.Normalize("5tup!d 1d!0t"); got != "stupid idiot" {
		t.Fatalf("leet fold = %q", got)
	}
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"ok\ttab\nline":    "ok\ttab\nline",
		"nul\x00byte":      "nulbyte",
		"bell\x07 del\x7f": "bell del",
		"c1\u0085control":  "c1control",
		"bad\xffutf8":      "badutf8",
		"na\u00efve stays": "na\u00efve stays",
	}
	for in, want := range cases {
		if got := Sanitize(in); got != want {
			t.Fatalf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	n := New(WithLeet())
	done := make(chan string, 16)
	for range 16 {
		go func() { done <- n.Normalize("H3LLO  w0rld") }()
	}
	for range 16 {
		if got := <-done; got != "hello world" {
			t.Fatalf("concurrent Normalize = %q", got)
		}
	}
}
