// Package shape is the codec for API shapes: JSON encoding with presence semantics,
// structural validation, caller-side constraint checks, and value equality/hashing.
//
// A shape is a struct whose optional members are pointers or nil-able slices tagged
// json:"Member,omitzero". Absent members are omitted on encode and left nil on decode;
// present zero values (0, "", []) round-trip as present
package shape

import (
	"bytes"
	"context"
	"encoding/json"
	stderrs "errors"
	"reflect"

	perr "comprehend/internal/platform/errors"
)

// Option tunes Encode, Decode and Validate
type Option func(*options)

type options struct {
	allowUnknownEnums bool
}

// AllowUnknownEnums keeps enum tokens the model does not define instead of failing.
// Kept values report IsKnown() == false and re-encode verbatim
func AllowUnknownEnums() Option { return func(o *options) { o.allowUnknownEnums = true } }

// WithUnknownEnums applies AllowUnknownEnums when allow is true
func WithUnknownEnums(allow bool) Option {
	return func(o *options) { o.allowUnknownEnums = o.allowUnknownEnums || allow }
}

func (o options) ctx() context.Context {
	ctx := context.Background()
	if o.allowUnknownEnums {
		ctx = context.WithValue(ctx, allowUnknownKey{}, true)
	}
	return ctx
}

func build(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Encode checks structural rules and returns the wire payload for v.
// A missing required member fails with Validation, an undefined enum token with InvalidEnum
func Encode(v any, opts ...Option) ([]byte, error) {
	if isNil(v) {
		return nil, perr.InvalidArgf("cannot encode a nil shape")
	}
	o := build(opts)
	if err := check(o.ctx(), get().structural, v, perr.ErrorCodeValidation); err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode shape")
	}
	return b, nil
}

// Decode parses a wire payload into a new T.
// Member names match exactly; anything else, including a differently cased
// wire name, is an unknown member and ignored. null is absence; an empty
// payload is an empty object
func Decode[T any](data []byte, opts ...Option) (*T, error) {
	out := new(T)
	if err := DecodeInto(data, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeInto is Decode for a caller-supplied destination pointer
func DecodeInto(data []byte, dst any, opts ...Option) error {
	if rv := reflect.ValueOf(dst); !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return perr.InvalidArgf("decode destination must be a non-nil pointer")
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		data = []byte("{}")
	}
	if data[0] != '{' {
		return perr.Decodef("payload must be a JSON object")
	}
	data, err := wire(data, reflect.TypeOf(dst).Elem(), "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return decodeError(err, "")
	}
	o := build(opts)
	return check(o.ctx(), get().structural, dst, perr.ErrorCodeDecode)
}

// Validate runs the structural rules and then the documented API constraints
func Validate(v any, opts ...Option) error {
	if isNil(v) {
		return perr.InvalidArgf("cannot validate a nil shape")
	}
	o := build(opts)
	if err := check(o.ctx(), get().structural, v, perr.ErrorCodeValidation); err != nil {
		return err
	}
	return check(o.ctx(), get().constraint, v, perr.ErrorCodeValidation)
}

// decodeError maps a json failure to Decode. path, when set, is the member the
// failing value was bound to and replaces the unindexed json field name
func decodeError(err error, path string) error {
	var ute *json.UnmarshalTypeError
	if stderrs.As(err, &ute) {
		e := perr.Wrapf(err, perr.ErrorCodeDecode, "cannot use %s as %s", ute.Value, typeLabel(ute.Type))
		if path == "" {
			path = ute.Field
		}
		if path != "" {
			e = perr.WithField(e, path)
		}
		return e
	}
	var se *json.SyntaxError
	if stderrs.As(err, &se) {
		return perr.Wrapf(err, perr.ErrorCodeDecode, "malformed payload at offset %d", se.Offset)
	}
	return perr.Wrap(err, perr.ErrorCodeDecode, "malformed payload")
}

func typeLabel(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return "base64 blob"
		}
		return "list"
	case reflect.Struct:
		if t.Name() == "Timestamp" {
			return "timestamp"
		}
		return "structure"
	case reflect.String:
		return "string"
	}
	return t.String()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
