package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusBadRequest},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeDecode, http.StatusBadRequest},
		{ErrorCodeInvalidEnum, http.StatusBadRequest},
		{ErrorCodeInvalidRequest, http.StatusBadRequest},
		{ErrorCodeLimitExceeded, http.StatusBadRequest},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeService, http.StatusInternalServerError},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := ErrorCodeInvalidEnum.String(); got != "invalid_enum" {
		t.Fatalf("String() = %q", got)
	}
	if got := ErrorCode(500).String(); got != "code(500)" {
		t.Fatalf("String() out of range = %q", got)
	}
}

func TestErrorRendering(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	src := stderrs.New("root")
	err := Wrap(src, ErrorCodeDecode, "expected number")
	err = WithField(err, "Entities[0].Score")
	err = WithOp(err, "DetectEntities")
	if want := "DetectEntities: Entities[0].Score: expected number: root"; err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	pe, _ := As(err)
	if pe.Message() != "expected number" {
		t.Fatalf("Message() = %q", pe.Message())
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeDecode, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeDB, "db failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeConflict, "nope %s", "here")
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	if got, ok := As(e4); !ok || got.Code() != ErrorCodeConflict {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// copy-on-write
	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithField(e5, "LanguageCode")
	e7 := WithOp(e6, "DetectSentiment")
	if fe, ok := As(e6); !ok || fe.Field() != "LanguageCode" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "DetectSentiment" || oe.Field() != "LanguageCode" {
		t.Fatalf("WithOp failed")
	}
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	if WithField(src, "x") != src {
		t.Fatalf("WithField should leave foreign errors alone")
	}

	// FieldOf looks through foreign wrappers
	if got := FieldOf(fmt.Errorf("outer: %w", e6)); got != "LanguageCode" {
		t.Fatalf("FieldOf = %q", got)
	}
	if FieldOf(src) != "" {
		t.Fatalf("FieldOf(foreign) should be empty")
	}

	w := (&Error{code: ErrorCodeInvalidEnum, msg: "nope", field: "Type"}).ToWire()
	if w.Code != ErrorCodeInvalidEnum || w.Label != "invalid_enum" || w.Message != "nope" || w.Field != "Type" {
		t.Fatalf("ToWire mismatch: %+v", w)
	}
	if wf := WireFrom(nil); wf != (Wire{}) {
		t.Fatalf("WireFrom(nil) expected zero, got %+v", wf)
	}
	if wf := WireFrom(src); wf.Code != ErrorCodeUnknown || wf.Message != "root" {
		t.Fatalf("WireFrom(foreign) mismatch: %+v", wf)
	}
	if wf := WireFrom(e4); wf.Code != ErrorCodeConflict || wf.Message != "nope here" {
		t.Fatalf("WireFrom(ours) mismatch: %+v", wf)
	}

	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) status = %d", st)
	}
	if st := HTTPStatus(e3); st != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus mismatch")
	}

	if !IsCode(NotFoundf("x"), ErrorCodeNotFound) ||
		!IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(Validationf("x"), ErrorCodeValidation) ||
		!IsCode(Decodef("x"), ErrorCodeDecode) ||
		!IsCode(DuplicateKeyf("x"), ErrorCodeDuplicateKey) ||
		!IsCode(DBf("x"), ErrorCodeDB) ||
		!IsCode(PanicErrf("x"), ErrorCodePanic) ||
		!IsCode(Conflictf("x"), ErrorCodeConflict) ||
		!IsCode(Unavailablef("x"), ErrorCodeUnavailable) ||
		!IsCode(Internalf("x"), ErrorCodeUnknown) {
		t.Fatalf("sugar helpers code mismatch")
	}

	if WrapIf(nil, ErrorCodeDB, "ignored") != nil {
		t.Fatalf("WrapIf(nil) should return nil")
	}
	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if got := Root(deep); got == nil || got.Error() != "root" {
		t.Fatalf("Root() failed, got %v", got)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{Unavailablef("down"), true},
		{New(ErrorCodeTooManyRequests, "slow down"), true},
		{New(ErrorCodeInvalidRequest, "bad"), false},
		{stderrs.New("deadlock detected"), true},
	}
	for _, c := range cases {
		if got := Retryable(c.err); got != c.want {
			t.Fatalf("Retryable(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
