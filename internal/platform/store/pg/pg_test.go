package pg

import (
	"context"
	"errors"
	"testing"

	"comprehend/internal/platform/logger"
	"comprehend/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpenParseError(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://bad"}, nil, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpenAppliesConfig(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return nil, errors.New("no db")
	})

	_, err := Open(context.Background(), Config{URL: "postgres://u:p@h:5432/db?sslmode=disable", MaxConns: 7}, nil,
		func(c *pgxpool.Config) { c.ConnConfig.RuntimeParams["application_name"] = "stub" })
	if err == nil {
		t.Fatalf("expected pool error")
	}
	if seen == nil || seen.MaxConns != 7 || seen.ConnConfig.RuntimeParams["application_name"] != "stub" {
		t.Fatalf("pool config not applied: %+v", seen)
	}
}

type capture struct{ evs []QueryEvent }

func (c *capture) OnQuery(_ context.Context, ev QueryEvent) { c.evs = append(c.evs, ev) }

func TestTracerLogs(t *testing.T) {
	var c capture
	var tr QueryTracer = &c
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 1"})
	if len(c.evs) != 1 {
		t.Fatalf("capture missed the event")
	}
	testkit.MustNotPanic(t, func() {
		Tracer(logger.Logger{}).OnQuery(context.Background(), QueryEvent{SQL: "SELECT\n  1", Slow: true})
	})
}
