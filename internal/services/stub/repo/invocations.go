package repo

import (
	"context"
	"sync"
	"time"

	"comprehend/internal/platform/logger"
	"comprehend/internal/platform/store"
	"comprehend/internal/services/stub/domain"
)

// InvocationsTable is the ClickHouse table the sink appends to
const InvocationsTable = "stub_invocations"

// Sink defaults used when a size or interval is not positive
const (
	DefaultBatch = 256
	DefaultFlush = 5 * time.Second
)

const invocationsDDL = `CREATE TABLE IF NOT EXISTS ` + InvocationsTable + ` (
	at          DateTime64(3),
	request_id  String,
	operation   LowCardinality(String),
	status      UInt16,
	error_type  LowCardinality(String),
	latency_us  UInt64,
	bytes_in    UInt32,
	bytes_out   UInt32
) ENGINE = MergeTree ORDER BY (operation, at)`

// EnsureInvocations creates the invocation table when the client can run DDL
func EnsureInvocations(ctx context.Context, ch store.Clickhouse) error {
	if x, ok := ch.(interface {
		Exec(ctx context.Context, sql string, args ...any) error
	}); ok {
		return x.Exec(ctx, invocationsDDL)
	}
	return nil
}

// Sink buffers invocations and appends them to ClickHouse in batches
type Sink struct {
	ch    store.Clickhouse
	size  int
	log   *logger.Logger
	mu    sync.Mutex
	buf   [][]any
	flush chan struct{}
}

var _ domain.InvocationSink = (*Sink)(nil)

// NewSink returns a sink that flushes every size entries, or sooner via Run
func NewSink(ch store.Clickhouse, size int) *Sink {
	if size <= 0 {
		size = DefaultBatch
	}
	return &Sink{ch: ch, size: size, log: logger.Named("stub.invocations"), flush: make(chan struct{}, 1)}
}

// Log implements domain.InvocationSink
func (s *Sink) Log(_ context.Context, inv domain.Invocation) error {
	s.mu.Lock()
	s.buf = append(s.buf, row(inv))
	full := len(s.buf) >= s.size
	s.mu.Unlock()
	if full {
		select {
		case s.flush <- struct{}{}:
		default:
		}
	}
	return nil
}

func row(inv domain.Invocation) []any {
	return []any{
		inv.At.UTC(),
		inv.RequestID,
		inv.Operation,
		uint16(inv.Status),
		inv.ErrorType,
		uint64(inv.Latency.Microseconds()),
		uint32(inv.BytesIn),
		uint32(inv.BytesOut),
	}
}

// Flush writes whatever is buffered
func (s *Sink) Flush(ctx context.Context) error {
	s.mu.Lock()
	rows := s.buf
	s.buf = nil
	s.mu.Unlock()
	if len(rows) == 0 {
		return nil
	}
	return s.ch.Insert(ctx, InvocationsTable, rows)
}

// Run flushes on every tick and whenever the buffer fills, until ctx ends. The last flush
// runs on a fresh context so a shutdown does not drop the tail.
// A non-positive interval uses DefaultFlush
func (s *Sink) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = DefaultFlush
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			fctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Flush(fctx); err != nil {
				s.log.Warn().Err(err).Msg("final invocation flush failed")
			}
			cancel()
			return
		case <-t.C:
		case <-s.flush:
		}
		if err := s.Flush(ctx); err != nil {
			s.log.Warn().Err(err).Msg("invocation flush failed")
		}
	}
}

// Discard drops every invocation
type Discard struct{}

// Log implements domain.InvocationSink
func (Discard) Log(context.Context, domain.Invocation) error { return nil }
