// Package enum implements the closed string vocabulary contract shared by every API enum.
// An enum is a named string type whose Values method returns its full token set.
package enum

import (
	stderrs "errors"
	"fmt"
	"slices"

	perr "comprehend/internal/platform/errors"
)

// Closed is satisfied by every enum type in the API model
type Closed[T any] interface {
	~string
	Values() []T
}

// InvalidValueError carries the offending token of a failed parse
type InvalidValueError struct {
	Enum  string
	Token string
	Null  bool
}

func (e *InvalidValueError) Error() string {
	switch {
	case e.Null:
		return fmt.Sprintf("%s: null is not a valid value", e.Enum)
	case e.Token == "":
		return fmt.Sprintf("%s: empty value", e.Enum)
	default:
		return fmt.Sprintf("%s: unknown value %q", e.Enum, e.Token)
	}
}

// Parse returns the variant whose wire token is exactly token.
// Matching is case-sensitive; empty and unknown tokens fail with InvalidEnum
func Parse[T Closed[T]](token string) (T, error) {
	var zero T
	if token != "" {
		for _, v := range zero.Values() {
			if string(v) == token {
				return v, nil
			}
		}
	}
	return zero, invalid[T](&InvalidValueError{Enum: Name[T](), Token: token})
}

// ParseRef is Parse for tokens that may be null on the wire
func ParseRef[T Closed[T]](token *string) (T, error) {
	if token == nil {
		var zero T
		return zero, invalid[T](&InvalidValueError{Enum: Name[T](), Null: true})
	}
	return Parse[T](*token)
}

// MustParse is Parse for tokens known at compile time. Panics on failure
func MustParse[T Closed[T]](token string) T {
	v, err := Parse[T](token)
	if err != nil {
		panic(err)
	}
	return v
}

// Wire returns the canonical token of v
func Wire[T ~string](v T) string { return string(v) }

// Known reports whether v is one of T's defined variants
func Known[T Closed[T]](v T) bool { return slices.Contains(v.Values(), v) }

// Tokens lists the wire tokens of T in definition order
func Tokens[T Closed[T]]() []string {
	var zero T
	vs := zero.Values()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// Name returns the unqualified type name of T for error messages
func Name[T any]() string {
	s := fmt.Sprintf("%T", *new(T))
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}

// IsInvalid reports whether err is an enum parse failure and returns its detail
func IsInvalid(err error) (*InvalidValueError, bool) {
	var ive *InvalidValueError
	if perr.IsCode(err, perr.ErrorCodeInvalidEnum) && stderrs.As(err, &ive) {
		return ive, true
	}
	return nil, false
}

// Invalid builds the parse failure for token without attempting a match
func Invalid[T any](token string) error {
	return invalid[T](&InvalidValueError{Enum: Name[T](), Token: token})
}

func invalid[T any](e *InvalidValueError) error {
	return perr.Wrap(e, perr.ErrorCodeInvalidEnum, "invalid "+Name[T]()+" value")
}
