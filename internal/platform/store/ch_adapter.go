package store

import (
	"context"

	"comprehend/internal/platform/store/ch"
)

// chAdapter adapts *ch.CH to the Clickhouse seam
type chAdapter struct {
	inner *ch.CH
}

var (
	_ Clickhouse = (*chAdapter)(nil)
	_ Pinger     = (*chAdapter)(nil)
)

func (a *chAdapter) Insert(ctx context.Context, table string, rows [][]any) error {
	return a.inner.Insert(ctx, table, rows)
}

func (a *chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.inner.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r: r}, nil
}

func (a *chAdapter) Ping(ctx context.Context) error { return a.inner.Ping(ctx) }
func (a *chAdapter) Close() error                   { return a.inner.Close() }

// Exec exposes DDL for migrations
func (a *chAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	return a.inner.Exec(ctx, sql, args...)
}

// chRows adapts driver rows, whose Close returns an error, to Rows
type chRows struct{ r ch.Rows }

func (x chRows) Next() bool             { return x.r.Next() }
func (x chRows) Scan(dest ...any) error { return x.r.Scan(dest...) }
func (x chRows) Err() error             { return x.r.Err() }
func (x chRows) Close()                 { _ = x.r.Close() }
func (x chRows) Columns() []string      { return x.r.Columns() }
