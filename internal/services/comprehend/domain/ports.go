package domain

import "context"

// Request is one encoded call
type Request struct {
	Operation Operation
	Body      []byte
}

// Response is what came back, successful or not. ErrorType is the raw X-Amzn-ErrorType header
type Response struct {
	StatusCode int
	RequestID  string
	ErrorType  string
	Body       []byte
}

// Transport delivers encoded requests. Signing, retries and timeouts belong to implementations
type Transport interface {
	RoundTrip(ctx context.Context, req Request) (*Response, error)
}

// TransportFunc adapts a function to Transport
type TransportFunc func(ctx context.Context, req Request) (*Response, error)

// RoundTrip calls f
func (f TransportFunc) RoundTrip(ctx context.Context, req Request) (*Response, error) { return f(ctx, req) }

// Ports are the collaborators the client module is built from
type Ports struct {
	Transport Transport
}

// IdempotentInput is implemented by inputs that carry a ClientRequestToken
type IdempotentInput interface {
	IdempotencyToken() *string
	SetIdempotencyToken(token string)
}
