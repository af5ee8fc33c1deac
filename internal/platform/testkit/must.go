package testkit

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The Must helpers stop the test on the first failure. Optional ctx values are
// appended to the failure, a leading format string is applied to the rest

func suffix(ctx []any) string {
	if len(ctx) == 0 {
		return ""
	}
	if f, ok := ctx[0].(string); ok && len(ctx) > 1 {
		return " (" + fmt.Sprintf(f, ctx[1:]...) + ")"
	}
	return " (" + fmt.Sprint(ctx...) + ")"
}

// MustNoErr fails on a non-nil err
func MustNoErr(t *testing.T, err error, ctx ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v%s", err, suffix(ctx))
	}
}

// MustErr fails on a nil err
func MustErr(t *testing.T, err error, ctx ...any) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error%s", suffix(ctx))
	}
}

// MustEqual compares with testify's object equality: deep equal, with []byte compared by content
func MustEqual(t *testing.T, want, got any, ctx ...any) {
	t.Helper()
	if !assert.ObjectsAreEqual(want, got) {
		t.Fatalf("not equal%s\nwant: %#v\ngot:  %#v", suffix(ctx), want, got)
	}
}

// MustTrue fails when cond is false
func MustTrue(t *testing.T, cond bool, ctx ...any) {
	t.Helper()
	if !cond {
		t.Fatalf("expected true%s", suffix(ctx))
	}
}

// MustFalse fails when cond is true
func MustFalse(t *testing.T, cond bool, ctx ...any) {
	t.Helper()
	if cond {
		t.Fatalf("expected false%s", suffix(ctx))
	}
}

// MustNil fails unless v is nil or a nil pointer, slice, map, chan, func or interface
func MustNil(t *testing.T, v any, ctx ...any) {
	t.Helper()
	if !isNil(v) {
		t.Fatalf("expected nil, got %#v%s", v, suffix(ctx))
	}
}

// MustNotNil is the inverse of MustNil
func MustNotNil(t *testing.T, v any, ctx ...any) {
	t.Helper()
	if isNil(v) {
		t.Fatalf("unexpected nil%s", suffix(ctx))
	}
}

// MustLen fails unless v is a string, slice, array, map or chan of length n
func MustLen(t *testing.T, v any, n int, ctx ...any) {
	t.Helper()
	l, ok := length(v)
	if !ok {
		t.Fatalf("cannot take len of %T%s", v, suffix(ctx))
	}
	if l != n {
		t.Fatalf("len = %d, want %d: %#v%s", l, n, v, suffix(ctx))
	}
}

// MustEmpty fails unless v is nil, a zero value or has length 0
func MustEmpty(t *testing.T, v any, ctx ...any) {
	t.Helper()
	if v != nil && !empty(v) {
		t.Fatalf("expected empty, got %#v%s", v, suffix(ctx))
	}
}

// MustNotEmpty is the inverse of MustEmpty
func MustNotEmpty(t *testing.T, v any, ctx ...any) {
	t.Helper()
	if v == nil || empty(v) {
		t.Fatalf("unexpected empty value %#v%s", v, suffix(ctx))
	}
}

// Eventually polls cond every tick until it holds or within elapses
func Eventually(t *testing.T, cond func() bool, within, tick time.Duration) {
	t.Helper()
	deadline := time.Now().Add(within)
	for {
		if cond() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %s", within)
		}
		time.Sleep(tick)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func length(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}

func empty(v any) bool {
	if l, ok := length(v); ok {
		return l == 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}
		return empty(rv.Elem().Interface())
	}
	return rv.IsZero()
}
