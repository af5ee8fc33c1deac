package http

import (
	"context"
	"encoding/json"
	stderrs "errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comprehend/internal/adapters/transport/awsjson"
	phttp "comprehend/internal/platform/net/http"
	"comprehend/internal/platform/net/middleware"
	"comprehend/internal/platform/store"
	"comprehend/internal/platform/testkit"
	cdom "comprehend/internal/services/comprehend/domain"
	"comprehend/internal/services/stub/domain"

	"github.com/go-chi/chi/v5"
)

type invokerFunc func(ctx context.Context, target string, payload []byte) ([]byte, error)

func (f invokerFunc) Invoke(ctx context.Context, target string, payload []byte) ([]byte, error) {
	return f(ctx, target, payload)
}

type sink struct{ got []domain.Invocation }

func (s *sink) Log(_ context.Context, inv domain.Invocation) error {
	s.got = append(s.got, inv)
	return nil
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newRouter(d Deps) stdhttp.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID(), middleware.Recover(WriteFault))
	Register(phttp.AdaptChi(mux), d)
	return mux
}

func post(h stdhttp.Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(awsjson.HeaderTarget, target)
	req.Header.Set("Content-Type", awsjson.ContentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestInvokeSuccess(t *testing.T) {
	var gotTarget, gotBody string
	sk := &sink{}
	h := newRouter(Deps{Sink: sk, Invoker: invokerFunc(func(_ context.Context, target string, payload []byte) ([]byte, error) {
		gotTarget, gotBody = target, string(payload)
		return []byte(`{"Languages":[]}`), nil
	})})

	rec := post(h, cdom.OpDetectDominantLanguage.Target(), `{"Text":"hi"}`)
	testkit.MustEqual(t, stdhttp.StatusOK, rec.Code)
	testkit.MustEqual(t, awsjson.ContentType, rec.Header().Get("Content-Type"))
	testkit.MustNotEmpty(t, rec.Header().Get(awsjson.HeaderRequestID))
	testkit.MustEqual(t, `{"Languages":[]}`, rec.Body.String())
	testkit.MustEqual(t, "Comprehend_20171127.DetectDominantLanguage", gotTarget)
	testkit.MustEqual(t, `{"Text":"hi"}`, gotBody)

	testkit.MustLen(t, sk.got, 1)
	testkit.MustEqual(t, "DetectDominantLanguage", sk.got[0].Operation)
	testkit.MustEqual(t, stdhttp.StatusOK, sk.got[0].Status)
	testkit.MustEqual(t, 13, sk.got[0].BytesIn)
	testkit.MustEqual(t, rec.Header().Get(awsjson.HeaderRequestID), sk.got[0].RequestID)
}

func TestInvokeFault(t *testing.T) {
	sk := &sink{}
	h := newRouter(Deps{Sink: sk, Invoker: invokerFunc(func(context.Context, string, []byte) ([]byte, error) {
		return nil, cdom.NewAPIError(cdom.Faultf(cdom.ErrorKindResourceNotFound, "gone"))
	})})

	rec := post(h, cdom.OpDescribeEndpoint.Target(), `{}`)
	testkit.MustEqual(t, stdhttp.StatusBadRequest, rec.Code)
	testkit.MustEqual(t, "ResourceNotFoundException", rec.Header().Get(awsjson.HeaderErrorType))
	var body map[string]any
	testkit.MustNoErr(t, json.Unmarshal(rec.Body.Bytes(), &body))
	testkit.MustEqual(t, "ResourceNotFoundException", body["__type"])
	testkit.MustEqual(t, "gone", body["Message"])

	testkit.MustLen(t, sk.got, 1)
	testkit.MustEqual(t, "ResourceNotFoundException", sk.got[0].ErrorType)
}

func TestInvokePlainErrorIsInternal(t *testing.T) {
	h := newRouter(Deps{Invoker: invokerFunc(func(context.Context, string, []byte) ([]byte, error) {
		return nil, stderrs.New("disk on fire")
	})})
	rec := post(h, cdom.OpListEndpoints.Target(), `{}`)
	testkit.MustEqual(t, stdhttp.StatusInternalServerError, rec.Code)
	testkit.MustEqual(t, "InternalServerException", rec.Header().Get(awsjson.HeaderErrorType))
	testkit.MustFalse(t, strings.Contains(rec.Body.String(), "disk"), rec.Body.String())
}

func TestInvokePanicRendersFault(t *testing.T) {
	h := newRouter(Deps{Invoker: invokerFunc(func(context.Context, string, []byte) ([]byte, error) {
		panic("boom")
	})})
	rec := post(h, cdom.OpListEndpoints.Target(), `{}`)
	testkit.MustEqual(t, stdhttp.StatusInternalServerError, rec.Code)
	testkit.MustEqual(t, "InternalServerException", rec.Header().Get(awsjson.HeaderErrorType))
}

func TestInvokeBodyTooLarge(t *testing.T) {
	mux := chi.NewRouter()
	mux.Use(middleware.MaxBytes(8))
	Register(phttp.AdaptChi(mux), Deps{Invoker: invokerFunc(func(context.Context, string, []byte) ([]byte, error) {
		t.Fatal("invoker must not run")
		return nil, nil
	})})
	rec := post(mux, cdom.OpDetectSentiment.Target(), `{"Text":"far too long"}`)
	testkit.MustEqual(t, stdhttp.StatusBadRequest, rec.Code)
	testkit.MustEqual(t, "InvalidRequestException", rec.Header().Get(awsjson.HeaderErrorType))
}

func TestProbes(t *testing.T) {
	h := newRouter(Deps{Checks: map[string]store.Pinger{"pg": pinger{}}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/stub/health", nil))
	testkit.MustEqual(t, stdhttp.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/stub/ready", nil))
	testkit.MustEqual(t, stdhttp.StatusOK, rec.Code)

	h = newRouter(Deps{Checks: map[string]store.Pinger{"pg": pinger{}, "ch": pinger{err: stderrs.New("refused")}}})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/stub/ready", nil))
	testkit.MustEqual(t, stdhttp.StatusServiceUnavailable, rec.Code)
	var env phttp.Envelope
	testkit.MustNoErr(t, json.Unmarshal(rec.Body.Bytes(), &env))
	data := env.Data.(map[string]any)
	testkit.MustEqual(t, "refused", data["ch"])
	testkit.MustEqual(t, "ok", data["pg"])
}
