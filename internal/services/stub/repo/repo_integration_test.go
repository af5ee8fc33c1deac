//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/store"
	"comprehend/internal/platform/store/pgtest"
	"comprehend/internal/platform/testkit"
	"comprehend/internal/services/stub/domain"
)

func TestPGStore(t *testing.T) {
	dsn := pgtest.Start(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := store.Open(ctx, store.Config{AppName: "stub-repo-it", PG: store.PGConfig{Enabled: true, URL: dsn}})
	testkit.MustNoErr(t, err)
	defer st.Close(ctx)
	testkit.MustNoErr(t, Migrate(ctx, st.PG))
	testkit.MustNoErr(t, Migrate(ctx, st.PG), "migrate is repeatable")

	s := NewPG().Bind(st.PG)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	r := rec(domain.KindClassifier, "arn:c1", "", t0)
	r.Status = "TRAINING"
	testkit.MustNoErr(t, s.Put(ctx, r))

	got, err := s.Get(ctx, r.Key())
	testkit.MustNoErr(t, err)
	testkit.MustEqual(t, "TRAINING", got.Status)
	testkit.MustEqual(t, "nlp", got.Tags["team"])
	testkit.MustJSONEq(t, `{"a":1}`, string(got.Body))
	testkit.MustTrue(t, got.CreatedAt.Equal(t0))

	stopped := t0.Add(time.Minute)
	r.StoppedAt = &stopped
	r.Status = "STOPPED"
	r.Tags = nil
	testkit.MustNoErr(t, s.Put(ctx, r))
	got, err = s.ByARN(ctx, r.ARN)
	testkit.MustNoErr(t, err)
	testkit.MustEqual(t, "STOPPED", got.Status)
	testkit.MustNil(t, got.Tags)
	testkit.MustNotNil(t, got.StoppedAt)

	testkit.MustNoErr(t, s.Put(ctx, rec(domain.KindClassifier, "arn:c0", "", t0)))
	list, err := s.List(ctx, domain.KindClassifier, "")
	testkit.MustNoErr(t, err)
	testkit.MustLen(t, list, 2)
	testkit.MustEqual(t, "arn:c0", list[0].ID)

	testkit.MustNoErr(t, s.Delete(ctx, r.Key()))
	testkit.MustTrue(t, perr.IsCode(s.Delete(ctx, r.Key()), perr.ErrorCodeNotFound))
	_, err = s.Get(ctx, r.Key())
	testkit.MustTrue(t, perr.IsCode(err, perr.ErrorCodeNotFound))
}
