// Package service serves the Comprehend JSON 1.1 contract from the stub engine and a record store
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"comprehend/internal/core/shape"
	"comprehend/internal/platform/logger"
	"comprehend/internal/platform/ptr"
	pstrings "comprehend/internal/platform/strings"
	cdom "comprehend/internal/services/comprehend/domain"
	"comprehend/internal/services/stub/domain"
	"comprehend/internal/services/stub/engine"

	"github.com/google/uuid"
)

// Config for the stub service
type Config struct {
	Region  string
	Account string
	// Workers bounds the per-request fan out of batch calls
	Workers int
	// JobPace is how long each lifecycle step of a job, model or endpoint takes
	JobPace time.Duration
	// MaxInFlight caps concurrent calls; 0 is unlimited. Excess calls get TooManyRequestsException
	MaxInFlight int
	// MaxInferenceUnits caps DesiredInferenceUnits per endpoint
	MaxInferenceUnits int
}

// Service implements domain.InvokerPort
type Service struct {
	Store    domain.RecordStore
	Engine   *engine.Engine
	Fixtures *Fixtures
	Cfg      Config

	handlers map[cdom.Operation]handler
	inflight chan struct{}
}

var _ domain.InvokerPort = (*Service)(nil)

var (
	now   = time.Now
	newID = func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") }
)

// New constructs the service. fx may be nil
func New(store domain.RecordStore, eng *engine.Engine, fx *Fixtures, cfg Config) *Service {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.Account == "" {
		cfg.Account = "123456789012"
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.JobPace < 0 {
		cfg.JobPace = 0
	}
	if cfg.MaxInferenceUnits <= 0 {
		cfg.MaxInferenceUnits = 100
	}
	if fx == nil {
		fx = &Fixtures{}
	}
	s := &Service{Store: store, Engine: eng, Fixtures: fx, Cfg: cfg}
	if cfg.MaxInFlight > 0 {
		s.inflight = make(chan struct{}, cfg.MaxInFlight)
	}
	s.handlers = s.routes()
	return s
}

// Seed stores the fixture flywheels so DescribeFlywheel can find them
func (s *Service) Seed(ctx context.Context) error {
	for _, fw := range s.Fixtures.Flywheels {
		if err := s.putFlywheel(ctx, fw); err != nil {
			return err
		}
	}
	return nil
}

type handler func(ctx context.Context, in any) (any, error)

func handle[In, Out any](fn func(context.Context, *In) (*Out, error)) handler {
	return func(ctx context.Context, in any) (any, error) {
		out, err := fn(ctx, in.(*In))
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Invoke implements domain.InvokerPort. Failures are *cdom.APIError values
func (s *Service) Invoke(ctx context.Context, target string, payload []byte) (resp []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.C(ctx).Error().Interface("panic", rec).Str("target", target).Msg("stub handler panicked")
			resp, err = nil, fault(cdom.ErrorKindInternalServer, "internal error")
		}
	}()

	op, opErr := cdom.OperationFromTarget(target)
	if opErr != nil {
		return nil, fault(cdom.ErrorKindUnknownOperation, "unknown operation %q", pstrings.Clip(target, maxEcho))
	}
	h, ok := s.handlers[op]
	in, _, known := cdom.Shapes(op)
	if !ok || !known {
		return nil, fault(cdom.ErrorKindUnknownOperation, "operation %s is not served", op)
	}

	if s.inflight != nil {
		select {
		case s.inflight <- struct{}{}:
			defer func() { <-s.inflight }()
		default:
			return nil, fault(cdom.ErrorKindTooManyRequests, "rate exceeded")
		}
	}

	if err := shape.DecodeInto(payload, in, shape.AllowUnknownEnums()); err != nil {
		return nil, requestError(err)
	}
	if fx, ok := s.Fixtures.Match(op, textOf(in), payload); ok {
		logger.C(ctx).Debug().Str("operation", string(op)).Str("match", fx.Match).Msg("serving fixture")
		if fx.Fault != nil {
			return nil, cdom.NewAPIError(fx.Fault)
		}
		return fx.Response, nil
	}
	if err := precheck(in); err != nil {
		return nil, err
	}
	if err := shape.Validate(in); err != nil {
		return nil, requestError(err)
	}

	out, err := h(ctx, in)
	if err != nil {
		return nil, err
	}
	b, err := shape.Encode(out)
	if err != nil {
		logger.C(ctx).Error().Err(err).Str("operation", string(op)).Msg("stub produced an invalid output")
		return nil, fault(cdom.ErrorKindInternalServer, "internal error")
	}
	return b, nil
}

func fault(k cdom.ErrorKind, format string, args ...any) error {
	return cdom.NewAPIError(cdom.Faultf(k, format, args...))
}

func invalidDocument(detail cdom.InvalidRequestDetailReason, format string, args ...any) error {
	return cdom.NewAPIError(&cdom.InvalidRequestException{
		Message: ptr.To(fmt.Sprintf(format, args...)),
		Reason:  ptr.To(cdom.InvalidRequestReasonInvalidDocument),
		Detail:  &cdom.InvalidRequestDetail{Reason: ptr.To(detail)},
	})
}
