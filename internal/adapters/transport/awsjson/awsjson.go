// Package awsjson is an unsigned AWS JSON 1.1 transport for local endpoints such as the stub
package awsjson

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	perr "comprehend/internal/platform/errors"
	"comprehend/internal/services/comprehend/domain"
)

// Wire headers of the JSON 1.1 protocol
const (
	ContentType     = "application/x-amz-json-1.1"
	HeaderTarget    = "X-Amz-Target"
	HeaderRequestID = "X-Amzn-RequestId"
	HeaderErrorType = "X-Amzn-ErrorType"
)

// maxBody caps how much of a response is read
const maxBody = 16 << 20

// Config for the transport
type Config struct {
	Endpoint string
	Timeout  time.Duration
	Client   *http.Client
}

// Transport posts encoded shapes to a single endpoint
type Transport struct {
	endpoint string
	hc       *http.Client
}

var _ domain.Transport = (*Transport)(nil)

// New validates cfg and returns a transport
func New(cfg Config) (*Transport, error) {
	ep := strings.TrimSpace(cfg.Endpoint)
	if ep == "" {
		return nil, perr.InvalidArgf("awsjson: endpoint is required")
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Transport{endpoint: ep, hc: hc}, nil
}

// Endpoint returns the target URL
func (t *Transport) Endpoint() string { return t.endpoint }

// RoundTrip implements domain.Transport. Non-2xx statuses are returned as responses, not errors
func (t *Transport) RoundTrip(ctx context.Context, req domain.Request) (*domain.Response, error) {
	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	hr.Header.Set("Content-Type", ContentType)
	hr.Header.Set(HeaderTarget, req.Operation.Target())

	resp, err := t.hc.Do(hr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}
	return &domain.Response{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(HeaderRequestID),
		ErrorType:  resp.Header.Get(HeaderErrorType),
		Body:       body,
	}, nil
}
