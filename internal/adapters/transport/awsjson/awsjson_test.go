package awsjson

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comprehend/internal/platform/testkit"
	"comprehend/internal/services/comprehend/domain"
)

func TestRoundTripHeaders(t *testing.T) {
	var gotTarget, gotCT, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTarget = r.Header.Get(HeaderTarget)
		gotCT = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set(HeaderRequestID, "rid-9")
		w.Header().Set("Content-Type", ContentType)
		_, _ = w.Write([]byte(`{"Languages":[]}`))
	}))
	defer srv.Close()

	tr, err := New(Config{Endpoint: srv.URL, Timeout: time.Second})
	testkit.MustNoErr(t, err)

	resp, err := tr.RoundTrip(context.Background(), domain.Request{
		Operation: domain.OpDetectDominantLanguage,
		Body:      []byte(`{"Text":"hello"}`),
	})
	testkit.MustNoErr(t, err)
	testkit.MustEqual(t, "Comprehend_20171127.DetectDominantLanguage", gotTarget)
	testkit.MustEqual(t, ContentType, gotCT)
	testkit.MustEqual(t, `{"Text":"hello"}`, gotBody)
	testkit.MustEqual(t, http.StatusOK, resp.StatusCode)
	testkit.MustEqual(t, "rid-9", resp.RequestID)
	testkit.MustEqual(t, `{"Languages":[]}`, string(resp.Body))
}

func TestRoundTripFaultIsAResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(HeaderErrorType, "ResourceNotFoundException")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"Message":"gone"}`))
	}))
	defer srv.Close()

	tr, err := New(Config{Endpoint: srv.URL})
	testkit.MustNoErr(t, err)
	resp, err := tr.RoundTrip(context.Background(), domain.Request{Operation: domain.OpDescribeEndpoint})
	testkit.MustNoErr(t, err)
	testkit.MustEqual(t, http.StatusBadRequest, resp.StatusCode)
	testkit.MustEqual(t, "ResourceNotFoundException", resp.ErrorType)
}

func TestRoundTripConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr, err := New(Config{Endpoint: url})
	testkit.MustNoErr(t, err)
	_, err = tr.RoundTrip(context.Background(), domain.Request{Operation: domain.OpListEndpoints})
	testkit.MustErr(t, err)
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := New(Config{Endpoint: "  "})
	testkit.MustErr(t, err)
}
