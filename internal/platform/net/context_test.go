package net

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID(bg) = %q", got)
	}
	ctx := WithRequestID(context.Background(), "8f1c")
	if got := RequestID(ctx); got != "8f1c" {
		t.Fatalf("RequestID = %q", got)
	}
	if WithRequestID(ctx, "") != ctx {
		t.Fatalf("empty id should not wrap the context")
	}
}
