// Package strings provides small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustPrefix normalizes a mount path like /stub: one leading slash, no trailing slash.
// Panics when nothing is left after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// FirstNonEmpty returns the first argument with non whitespace content, or ""
func FirstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if std.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Clip shortens s to at most n bytes without splitting a UTF-8 sequence
func Clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
