package logger

import "context"

// scope is what a request carries for its log lines
type scope struct {
	requestID string
	operation string
}

type scopeKey struct{}

func scopeOf(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)
	return s
}

// WithRequest binds the request id and API operation to ctx. Empty values leave the
// current binding in place
func WithRequest(ctx context.Context, reqID, operation string) context.Context {
	cur := scopeOf(ctx)
	next := cur
	if reqID != "" {
		next.requestID = reqID
	}
	if operation != "" {
		next.operation = operation
	}
	if next == cur {
		return ctx
	}
	return context.WithValue(ctx, scopeKey{}, next)
}

// WithOperation binds only the operation
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithRequest(ctx, "", operation)
}

// C returns a child of the root carrying request_id and operation from ctx
func C(ctx context.Context) *Logger {
	s := scopeOf(ctx)
	if s == (scope{}) {
		return Get()
	}
	wc := Get().With()
	if s.requestID != "" {
		wc = wc.Str("request_id", s.requestID)
	}
	if s.operation != "" {
		wc = wc.Str("operation", s.operation)
	}
	l := wc.Logger()
	return &l
}
