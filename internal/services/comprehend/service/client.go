// Package service is the typed client for the Comprehend JSON API.
// Each method encodes its input shape, hands it to a Transport, and decodes
// either the output shape or the remote fault
package service

import (
	"context"
	"time"

	"comprehend/internal/core/shape"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/logger"
	"comprehend/internal/services/comprehend/domain"

	"github.com/google/uuid"
)

// Config for the client
type Config struct {
	// ValidateRequests checks documented length, range and ARN limits before sending
	ValidateRequests bool
	// AllowUnknownEnums keeps enum tokens this model does not define instead of failing decode
	AllowUnknownEnums bool
}

// Client calls the remote API through a Transport. Safe for concurrent use
type Client struct {
	tr  domain.Transport
	cfg Config
}

// newToken fills missing ClientRequestToken members
var newToken = uuid.NewString

// New constructs a client over tr
func New(tr domain.Transport, cfg Config) *Client {
	return &Client{tr: tr, cfg: cfg}
}

// Config returns the client configuration
func (c *Client) Config() Config { return c.cfg }

func (c *Client) opts() []shape.Option {
	return []shape.Option{shape.WithUnknownEnums(c.cfg.AllowUnknownEnums)}
}

// invoke runs op on a copy of in so token filling never touches the caller's value
func invoke[Out, In any](ctx context.Context, c *Client, op domain.Operation, in *In) (*Out, error) {
	var req In
	if in != nil {
		req = *in
	}
	out := new(Out)
	if err := c.do(ctx, op, &req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Call runs op with a raw JSON input payload and returns the decoded output shape.
// The payload is decoded strictly as the operation's input first
func (c *Client) Call(ctx context.Context, op domain.Operation, payload []byte) (any, error) {
	in, out, ok := domain.Shapes(op)
	if !ok {
		return nil, perr.InvalidArgf("unknown operation %q", op)
	}
	if err := shape.DecodeInto(payload, in, c.opts()...); err != nil {
		return nil, perr.WithOp(err, string(op))
	}
	if err := c.do(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, op domain.Operation, in, out any) error {
	if idem, ok := in.(domain.IdempotentInput); ok && idem.IdempotencyToken() == nil {
		idem.SetIdempotencyToken(newToken())
	}

	opts := c.opts()
	if c.cfg.ValidateRequests {
		if err := shape.Validate(in, opts...); err != nil {
			return perr.WithOp(err, string(op))
		}
	}
	body, err := shape.Encode(in, opts...)
	if err != nil {
		return perr.WithOp(err, string(op))
	}

	ctx = logger.WithOperation(ctx, string(op))
	log := logger.C(ctx)
	start := time.Now()

	resp, err := c.tr.RoundTrip(ctx, domain.Request{Operation: op, Body: body})
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("transport failure")
		return perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "transport failure"), string(op))
	}
	log.Debug().
		Int("status", resp.StatusCode).
		Str("aws_request_id", resp.RequestID).
		Int("bytes_out", len(body)).
		Int("bytes_in", len(resp.Body)).
		Dur("elapsed", time.Since(start)).
		Msg("round trip")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ae := domain.DecodeAPIError(resp.StatusCode, resp.RequestID, resp.ErrorType, resp.Body)
		return perr.WithOp(perr.Wrap(ae, ae.Code(), "remote failure"), string(op))
	}
	if err := shape.DecodeInto(resp.Body, out, opts...); err != nil {
		return perr.WithOp(err, string(op))
	}
	return nil
}
