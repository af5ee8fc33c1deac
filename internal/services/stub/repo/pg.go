package repo

import (
	"context"
	"encoding/json"
	"time"

	"comprehend/internal/modkit/repokit"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/store"
	"comprehend/internal/services/stub/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

const columns = `kind, id, arn, family, name, token, ref, status, body, tags, created_at, updated_at, stopped_at`

// Put upserts by (kind, id)
func (s *pg) Put(ctx context.Context, r domain.Record) error {
	if r.Kind == "" || r.ID == "" {
		return perr.InvalidArgf("record kind and id are required")
	}
	tags, err := json.Marshal(nonNilTags(r.Tags))
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode tags")
	}
	var body any
	if len(r.Body) > 0 {
		body = string(r.Body)
	}
	_, err = s.q.Exec(ctx, `
		INSERT INTO stub_records (`+columns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9::jsonb,$10::jsonb,$11,$12,$13)
		ON CONFLICT (kind, id) DO UPDATE SET
			arn = EXCLUDED.arn, family = EXCLUDED.family, name = EXCLUDED.name,
			token = EXCLUDED.token, ref = EXCLUDED.ref, status = EXCLUDED.status,
			body = EXCLUDED.body, tags = EXCLUDED.tags,
			updated_at = EXCLUDED.updated_at, stopped_at = EXCLUDED.stopped_at`,
		string(r.Kind), r.ID, r.ARN, r.Family, r.Name, r.Token, r.Ref, r.Status,
		body, string(tags), r.CreatedAt.UTC(), r.UpdatedAt.UTC(), r.StoppedAt,
	)
	return perr.FromPostgres(err, "put stub record")
}

func (s *pg) Get(ctx context.Context, k domain.Key) (domain.Record, error) {
	return store.One(ctx, s.q, scanRecord,
		`SELECT `+columns+` FROM stub_records WHERE kind = $1 AND id = $2`, string(k.Kind), k.ID)
}

func (s *pg) ByARN(ctx context.Context, arn string) (domain.Record, error) {
	return store.One(ctx, s.q, scanRecord,
		`SELECT `+columns+` FROM stub_records WHERE arn = $1 ORDER BY created_at LIMIT 1`, arn)
}

func (s *pg) List(ctx context.Context, kind domain.Kind, family string) ([]domain.Record, error) {
	out, err := store.Many(ctx, s.q, scanRecord, `
		SELECT `+columns+` FROM stub_records
		WHERE kind = $1 AND ($2 = '' OR family = $2)
		ORDER BY created_at, id`, string(kind), family)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Record{}
	}
	return out, nil
}

func (s *pg) Delete(ctx context.Context, k domain.Key) error {
	return store.ExecOne(ctx, s.q, `DELETE FROM stub_records WHERE kind = $1 AND id = $2`, string(k.Kind), k.ID)
}

func scanRecord(row store.Row) (domain.Record, error) {
	var (
		r          domain.Record
		kind       string
		body, tags []byte
		stopped    *time.Time
	)
	if err := row.Scan(&kind, &r.ID, &r.ARN, &r.Family, &r.Name, &r.Token, &r.Ref, &r.Status,
		&body, &tags, &r.CreatedAt, &r.UpdatedAt, &stopped); err != nil {
		return domain.Record{}, perr.FromPostgres(err, "scan stub record")
	}
	r.Kind = domain.Kind(kind)
	r.StoppedAt = stopped
	if len(body) > 0 {
		r.Body = json.RawMessage(body)
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &r.Tags); err != nil {
			return domain.Record{}, perr.Wrap(err, perr.ErrorCodeDecode, "decode tags")
		}
		if len(r.Tags) == 0 {
			r.Tags = nil
		}
	}
	return r, nil
}

func nonNilTags(t map[string]string) map[string]string {
	if t == nil {
		return map[string]string{}
	}
	return t
}
