package domain

import "context"

// RecordStore persists resource records. Get and Delete report perr.ErrNotFound for absent keys
type RecordStore interface {
	Put(ctx context.Context, r Record) error
	Get(ctx context.Context, k Key) (Record, error)
	ByARN(ctx context.Context, arn string) (Record, error)
	// List returns records of kind (and family, when not empty) ordered by CreatedAt then ID
	List(ctx context.Context, kind Kind, family string) ([]Record, error)
	Delete(ctx context.Context, k Key) error
}

// InvocationSink receives one entry per served call
type InvocationSink interface {
	Log(ctx context.Context, inv Invocation) error
}

// InvokerPort serves one encoded call. The error, when not nil, carries a fault
type InvokerPort interface {
	Invoke(ctx context.Context, target string, payload []byte) ([]byte, error)
}
