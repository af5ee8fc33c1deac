package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops invalid UTF-8, NUL, DEL and C0/C1 control characters other than tab, CR and LF.
// Clean input is returned as is
func Sanitize(s string) string {
	if clean(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError || control(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

func clean(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if control(r) {
			return false
		}
	}
	return true
}

func control(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20 || r == 0x7f:
		return true
	case r >= 0x80 && r <= 0x9f:
		return true
	}
	return false
}
