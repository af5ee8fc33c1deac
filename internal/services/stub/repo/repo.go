// Package repo provides record stores for the stub: in memory by default, Postgres when enabled
package repo

import (
	"context"
	_ "embed"
	"sort"
	"sync"

	"comprehend/internal/modkit/repokit"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/store"
	"comprehend/internal/services/stub/domain"
)

// Storage is the record store the stub service runs against
type Storage = domain.RecordStore

//go:embed schema.sql
var schema string

// Migrate creates the record table when missing. Two replicas migrating at once
// can collide on the catalog; the loser sees a duplicate key and the table exists
func Migrate(ctx context.Context, q repokit.Queryer) error {
	present, err := store.Scalar[bool](ctx, q, `SELECT to_regclass('stub_records') IS NOT NULL`)
	if err != nil {
		return err
	}
	if present {
		return nil
	}
	if _, err := q.Exec(ctx, schema); err != nil {
		if perr.IsDuplicateKey(err) {
			return nil
		}
		return perr.FromPostgres(err, "migrate stub_records")
	}
	return nil
}

type memory struct {
	mu   sync.RWMutex
	recs map[domain.Key]domain.Record
}

// NewMemory returns an empty in-process store. Records are copied in and out
func NewMemory() Storage {
	return &memory{recs: map[domain.Key]domain.Record{}}
}

func clone(r domain.Record) domain.Record {
	if r.Body != nil {
		r.Body = append([]byte(nil), r.Body...)
	}
	if r.Tags != nil {
		tags := make(map[string]string, len(r.Tags))
		for k, v := range r.Tags {
			tags[k] = v
		}
		r.Tags = tags
	}
	if r.StoppedAt != nil {
		at := *r.StoppedAt
		r.StoppedAt = &at
	}
	return r
}

func (m *memory) Put(_ context.Context, r domain.Record) error {
	if r.Kind == "" || r.ID == "" {
		return perr.InvalidArgf("record kind and id are required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[r.Key()] = clone(r)
	return nil
}

func (m *memory) Get(_ context.Context, k domain.Key) (domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recs[k]
	if !ok {
		return domain.Record{}, perr.ErrNotFound
	}
	return clone(r), nil
}

func (m *memory) ByARN(_ context.Context, arn string) (domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.recs {
		if r.ARN == arn {
			return clone(r), nil
		}
	}
	return domain.Record{}, perr.ErrNotFound
}

func (m *memory) List(_ context.Context, kind domain.Kind, family string) ([]domain.Record, error) {
	m.mu.RLock()
	out := make([]domain.Record, 0, len(m.recs))
	for _, r := range m.recs {
		if r.Kind != kind || (family != "" && r.Family != family) {
			continue
		}
		out = append(out, clone(r))
	}
	m.mu.RUnlock()
	sortRecords(out)
	return out, nil
}

func (m *memory) Delete(_ context.Context, k domain.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recs[k]; !ok {
		return perr.ErrNotFound
	}
	delete(m.recs, k)
	return nil
}

func sortRecords(rs []domain.Record) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.Before(rs[j].CreatedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}
