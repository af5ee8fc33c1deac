package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"comprehend/internal/adapters/transport/awsjson"
	"comprehend/internal/modkit"
	"comprehend/internal/platform/config"
	"comprehend/internal/platform/logger"
	phttp "comprehend/internal/platform/net/http"
	"comprehend/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func deps() modkit.Deps {
	return modkit.Deps{Log: *logger.Named("test"), Cfg: config.New()}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("STUB_JOB_PACE", "2s")
	t.Setenv("STUB_WORKERS", "9")
	t.Setenv("STUB_REGION", "eu-west-1")

	o := FromConfig(config.New())
	testkit.MustEqual(t, 2*time.Second, o.JobPace)
	testkit.MustEqual(t, 9, o.Workers)
	testkit.MustEqual(t, "eu-west-1", o.Region)
	testkit.MustEqual(t, "123456789012", o.Account)
	testkit.MustEqual(t, 0, o.MaxInFlight)
}

func TestFromConfigClampsInvocationLog(t *testing.T) {
	t.Setenv("STUB_INVOCATION_FLUSH", "0s")
	t.Setenv("STUB_INVOCATION_BATCH", "-3")

	o := FromConfig(config.New())
	testkit.MustEqual(t, 5*time.Second, o.InvocationFlush)
	testkit.MustEqual(t, 256, o.InvocationBatch)

	t.Setenv("STUB_INVOCATION_FLUSH", "-2s")
	testkit.MustEqual(t, 5*time.Second, FromConfig(config.New()).InvocationFlush)
}

func TestNewInMemoryServesCalls(t *testing.T) {
	m, err := New(context.Background(), deps())
	testkit.MustNoErr(t, err)
	testkit.MustEqual(t, "stub", m.Name())
	p, ok := m.Ports().(Ports)
	testkit.MustTrue(t, ok)
	testkit.MustNotNil(t, p.Invoker)

	r := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(r))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Text":"The cat is on the table"}`))
	req.Header.Set(awsjson.HeaderTarget, "Comprehend_20171127.DetectDominantLanguage")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	testkit.MustEqual(t, http.StatusOK, rec.Code)
	testkit.MustContain(t, rec.Body.String(), `"LanguageCode":"en"`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stub/ready", nil))
	testkit.MustEqual(t, http.StatusOK, rec.Code)

	// no ClickHouse, so Run has nothing to do
	done := make(chan struct{})
	go func() { m.Run(context.Background()); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return without a call log")
	}
}

func TestNewLoadsFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	testkit.MustNoErr(t, os.WriteFile(path, []byte(`
fixtures:
  - operation: ListEndpoints
    fault:
      type: TooManyRequestsException
flywheels:
  - FlywheelArn: arn:aws:comprehend:us-east-1:123456789012:flywheel/fw
    Status: ACTIVE
    ModelType: DOCUMENT_CLASSIFIER
    TaskConfig: {LanguageCode: en}
`), 0o600))
	t.Setenv("STUB_FIXTURES", path)

	m, err := New(context.Background(), deps())
	testkit.MustNoErr(t, err)
	inv := m.Ports().(Ports).Invoker

	_, err = inv.Invoke(context.Background(), "Comprehend_20171127.ListEndpoints", []byte(`{}`))
	testkit.MustErr(t, err)
	testkit.MustContain(t, err.Error(), "TooManyRequests")

	out, err := inv.Invoke(context.Background(), "Comprehend_20171127.DescribeFlywheel",
		[]byte(`{"FlywheelArn":"arn:aws:comprehend:us-east-1:123456789012:flywheel/fw"}`))
	testkit.MustNoErr(t, err)
	testkit.MustContain(t, string(out), `"Status":"ACTIVE"`)
}

func TestNewRejectsBadFixtures(t *testing.T) {
	t.Setenv("STUB_FIXTURES", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := New(context.Background(), deps())
	testkit.MustErr(t, err)
}

func TestMountUnderPrefixWithMiddleware(t *testing.T) {
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Mounted", "yes")
			next.ServeHTTP(w, r)
		})
	}
	m, err := New(context.Background(), deps(),
		modkit.WithName("local"),
		modkit.WithPrefix("/aws"),
		modkit.WithMiddlewares(tag),
	)
	testkit.MustNoErr(t, err)
	testkit.MustEqual(t, "local", m.Name())

	r := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(r))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/aws/stub/health", nil))
	testkit.MustEqual(t, http.StatusOK, rec.Code)
	testkit.MustEqual(t, "yes", rec.Header().Get("X-Mounted"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stub/health", nil))
	testkit.MustEqual(t, http.StatusNotFound, rec.Code)
}

func TestMountNormalizesPrefix(t *testing.T) {
	cases := map[string]string{
		" aws/ ": "/aws/stub/health",
		"/":      "/stub/health",
		"":       "/stub/health",
	}
	for prefix, path := range cases {
		m, err := New(context.Background(), deps(), modkit.WithPrefix(prefix))
		testkit.MustNoErr(t, err)

		r := chi.NewRouter()
		m.MountRoutes(phttp.AdaptChi(r))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		testkit.MustEqual(t, http.StatusOK, rec.Code, "prefix %q", prefix)
	}
}
