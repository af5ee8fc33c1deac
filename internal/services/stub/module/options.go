package module

import (
	"time"

	"comprehend/internal/platform/config"
	"comprehend/internal/services/stub/repo"
)

// Options for the stub module
type Options struct {
	Fixtures          string
	JobPace           time.Duration
	Workers           int
	MaxInFlight       int
	MaxInferenceUnits int
	Region            string
	Account           string
	InvocationBatch   int
	InvocationFlush   time.Duration
}

// FromConfig fills options from the environment
// STUB_FIXTURES (default "") is a YAML file of canned responses and faults
// STUB_JOB_PACE (default 30s) is how long each job, training or endpoint step takes
// STUB_WORKERS (default 4) bounds the fan out of batch calls
// STUB_MAX_IN_FLIGHT (default 0, unlimited) answers excess calls with TooManyRequestsException
// STUB_INVOCATION_BATCH and STUB_INVOCATION_FLUSH tune the ClickHouse call log; non-positive values use the defaults
func FromConfig(cfg config.Conf) Options {
	s := cfg.Prefix("STUB_")
	o := Options{
		Fixtures:          s.MayString("FIXTURES", ""),
		JobPace:           s.MayDuration("JOB_PACE", 30*time.Second),
		Workers:           s.MayInt("WORKERS", 4),
		MaxInFlight:       s.MayInt("MAX_IN_FLIGHT", 0),
		MaxInferenceUnits: s.MayInt("MAX_INFERENCE_UNITS", 100),
		Region:            s.MayString("REGION", "us-east-1"),
		Account:           s.MayString("ACCOUNT", "123456789012"),
		InvocationBatch:   s.MayInt("INVOCATION_BATCH", repo.DefaultBatch),
		InvocationFlush:   s.MayDuration("INVOCATION_FLUSH", repo.DefaultFlush),
	}
	if o.InvocationBatch <= 0 {
		o.InvocationBatch = repo.DefaultBatch
	}
	if o.InvocationFlush <= 0 {
		o.InvocationFlush = repo.DefaultFlush
	}
	return o
}
