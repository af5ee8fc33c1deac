// Package ptr holds helpers for optional shape members
package ptr

import "time"

// To returns a pointer to a copy of v
func To[T any](v T) *T { return &v }

// Deref returns *p, or the zero value if p is nil
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Or returns *p, or def if p is nil
func Or[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// NonEmpty returns a pointer to s, or nil if s is empty
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Time returns a pointer to t or nil if t is zero
func Time(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
