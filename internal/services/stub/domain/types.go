// Package domain holds the stub's resource records and the ports its service depends on
package domain

import (
	"encoding/json"
	"time"
)

// Kind is the resource family a record belongs to
type Kind string

// Record kinds
const (
	KindJob        Kind = "job"
	KindClassifier Kind = "classifier"
	KindEndpoint   Kind = "endpoint"
	KindFlywheel   Kind = "flywheel"
)

// Record is one stored resource. Body holds the properties shape as JSON;
// lifecycle fields live on the record so status can be derived at read time
type Record struct {
	Kind      Kind              `json:"kind"`
	ID        string            `json:"id"` // job id, or the ARN for models and endpoints
	ARN       string            `json:"arn"`
	Family    string            `json:"family,omitempty"` // job family, e.g. "EntitiesDetection"
	Name      string            `json:"name,omitempty"`
	Token     string            `json:"token,omitempty"` // ClientRequestToken of the create call
	Ref       string            `json:"ref,omitempty"`   // model ARN an endpoint serves
	Status    string            `json:"status,omitempty"`
	Body      json.RawMessage   `json:"body,omitempty"`
	Tags      map[string]string `json:"tags,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	StoppedAt *time.Time        `json:"stopped_at,omitempty"`
}

// Key addresses a record
type Key struct {
	Kind Kind
	ID   string
}

// Key returns the record's address
func (r Record) Key() Key { return Key{Kind: r.Kind, ID: r.ID} }

// Invocation is one served call, as written to the invocation log
type Invocation struct {
	At        time.Time
	RequestID string
	Operation string
	Status    int
	ErrorType string
	Latency   time.Duration
	BytesIn   int
	BytesOut  int
}
