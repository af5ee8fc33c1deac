package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "comprehend/internal/platform/errors"
	pnet "comprehend/internal/platform/net"
)

func TestRequestIDMintsAndEchoes(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if seen == "" || rec.Header().Get(HeaderRequestID) != seen {
		t.Fatalf("minted id %q, header %q", seen, rec.Header().Get(HeaderRequestID))
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(HeaderRequestID, "given-1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "given-1" || rec.Header().Get(HeaderRequestID) != "given-1" {
		t.Fatalf("inbound id not reused: %q", seen)
	}
}

func TestRecoverRendersPanic(t *testing.T) {
	var got error
	write := func(w http.ResponseWriter, _ *http.Request, err error) {
		got = err
		w.WriteHeader(perr.HTTPStatus(err))
	}
	h := Recover(write)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if !perr.IsCode(got, perr.ErrorCodePanic) || !strings.Contains(got.Error(), "boom") {
		t.Fatalf("recovered error = %v", got)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAccessLogCapturesStatus(t *testing.T) {
	var op string
	h := AccessLog(AccessLogOptions{OperationHeader: "X-Amz-Target"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		op = r.Header.Get("X-Amz-Target")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	}))
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Amz-Target", "Comprehend_20171127.DetectSentiment")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot || rec.Body.String() != "short" || op == "" {
		t.Fatalf("passthrough broken: %d %q", rec.Code, rec.Body.String())
	}
}

func TestMaxBytes(t *testing.T) {
	h := MaxBytes(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 16)
		if _, err := r.Body.Read(buf); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		n, err := r.Body.Read(buf)
		if err != nil || n > 0 {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(CORSOptions{})(http.NotFoundHandler())
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Amz-Target")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("preflight not answered: %v", rec.Header())
	}
}
