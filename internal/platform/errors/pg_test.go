package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code, col string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ColumnName: col}
}

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23502", ErrorCodeValidation},
		{"23514", ErrorCodeValidation},
		{"22001", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"22032", ErrorCodeInvalidArgument},
		{"40001", ErrorCodeDB},
		{"25006", ErrorCodeUnavailable},
		{"57P03", ErrorCodeUnavailable},
		{"XXXXX", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pgErr(c.code, ""))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("FromPostgres(nil) should be nil")
	}

	err := FromPostgres(fmt.Errorf("exec: %w", pgErr("23502", "kind")), "insert record")
	if CodeOf(err) != ErrorCodeValidation || FieldOf(err) != "kind" {
		t.Fatalf("FromPostgres = %v (%v, %q)", err, CodeOf(err), FieldOf(err))
	}
	if !IsDuplicateKey(FromPostgres(pgErr("23505", ""), "dup")) {
		t.Fatalf("IsDuplicateKey should see through the wrap")
	}
	if CodeOf(FromPostgres(pgx.ErrNoRows, "get")) != ErrorCodeNotFound {
		t.Fatalf("ErrNoRows should map to NotFound")
	}
	if CodeOf(FromPostgres(stderrs.New("conn reset"), "get")) != ErrorCodeDB {
		t.Fatalf("foreign errors should map to DB")
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) || IsRetryable(context.Canceled) {
		t.Fatalf("nil and cancellation are not retryable")
	}
	if !IsRetryable(pgErr("40001", "")) || !IsRetryable(pgErr("40P01", "")) {
		t.Fatalf("serialization failure and deadlock are retryable")
	}
	if IsRetryable(pgErr("23505", "")) {
		t.Fatalf("unique violation is not retryable")
	}
	if !IsRetryable(stderrs.New("commit unexpectedly resulted in rollback")) {
		t.Fatalf("commit rollback text should be retryable")
	}
}
