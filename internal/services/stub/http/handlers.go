// Package http exposes the stub over the JSON 1.1 wire protocol, plus health and readiness probes
package http

import (
	"context"
	stderrs "errors"
	"io"
	stdhttp "net/http"
	"time"

	"comprehend/internal/adapters/transport/awsjson"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/logger"
	pnet "comprehend/internal/platform/net"
	phttp "comprehend/internal/platform/net/http"
	"comprehend/internal/platform/store"
	cdom "comprehend/internal/services/comprehend/domain"
	"comprehend/internal/services/stub/domain"
)

// Deps for the handlers. Sink and Checks are optional
type Deps struct {
	Invoker domain.InvokerPort
	Sink    domain.InvocationSink
	// Checks are pinged by the readiness probe, by name
	Checks map[string]store.Pinger
}

type handlers struct{ d Deps }

// Register mounts the protocol endpoint at POST / and the probes under /stub
func Register(r phttp.Router, d Deps) {
	h := &handlers{d: d}
	r.Post("/", h.invoke)
	r.Get("/stub/health", h.health)
	r.Get("/stub/ready", h.ready)
}

func (h *handlers) invoke(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	start := time.Now()
	target := r.Header.Get(awsjson.HeaderTarget)
	op := target
	if o, err := cdom.OperationFromTarget(target); err == nil {
		op = string(o)
	}
	ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), op)

	var (
		resp []byte
		err  error
	)
	payload, rerr := io.ReadAll(r.Body)
	if rerr != nil {
		var tooBig *stdhttp.MaxBytesError
		if stderrs.As(rerr, &tooBig) {
			err = cdom.NewAPIError(cdom.Faultf(cdom.ErrorKindInvalidRequest, "request body exceeds %d bytes", tooBig.Limit))
		} else {
			err = cdom.NewAPIError(cdom.Faultf(cdom.ErrorKindInvalidRequest, "cannot read request body"))
		}
	} else {
		resp, err = h.d.Invoker.Invoke(ctx, target, payload)
	}

	inv := domain.Invocation{
		At:        start,
		RequestID: pnet.RequestID(ctx),
		Operation: op,
		BytesIn:   len(payload),
	}
	if err != nil {
		inv.Status, inv.ErrorType, inv.BytesOut = writeFault(ctx, w, err)
	} else {
		w.Header().Set("Content-Type", awsjson.ContentType)
		w.WriteHeader(stdhttp.StatusOK)
		_, _ = w.Write(resp)
		inv.Status, inv.BytesOut = stdhttp.StatusOK, len(resp)
	}
	inv.Latency = time.Since(start)

	logger.C(ctx).Debug().
		Int("status", inv.Status).
		Str("error_type", inv.ErrorType).
		Dur("latency", inv.Latency).
		Msg("served")
	if h.d.Sink != nil {
		if err := h.d.Sink.Log(ctx, inv); err != nil {
			logger.C(ctx).Warn().Err(err).Msg("invocation log dropped")
		}
	}
}

// writeFault renders err as a JSON 1.1 fault. Errors that carry no fault are internal
func writeFault(ctx context.Context, w stdhttp.ResponseWriter, err error) (status int, errorType string, n int) {
	ae, ok := cdom.AsAPIError(err)
	if !ok {
		logger.C(ctx).Error().Err(err).Msg("unmapped stub failure")
		ae = cdom.NewAPIError(cdom.Faultf(cdom.ErrorKindInternalServer, "internal error"))
	}
	body, encErr := cdom.EncodeFault(ae.Fault)
	if encErr != nil {
		body = []byte(`{"__type":"InternalServerException"}`)
	}
	w.Header().Set("Content-Type", awsjson.ContentType)
	w.Header().Set(awsjson.HeaderErrorType, ae.Type)
	w.WriteHeader(ae.StatusCode)
	_, _ = w.Write(body)
	return ae.StatusCode, ae.Type, len(body)
}

// WriteFault is a middleware.ErrorWriter that renders failures the way the protocol endpoint does
func WriteFault(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	if perr.IsCode(err, perr.ErrorCodePanic) {
		err = cdom.NewAPIError(cdom.Faultf(cdom.ErrorKindInternalServer, "internal error"))
	}
	writeFault(r.Context(), w, err)
}

func (h *handlers) health(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	phttp.RespondOK(w, r, map[string]string{"status": "ok"})
}

func (h *handlers) ready(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true
	for name, p := range h.d.Checks {
		if err := p.Ping(ctx); err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = "ok"
	}
	status := stdhttp.StatusOK
	if !healthy {
		status = stdhttp.StatusServiceUnavailable
	}
	phttp.Respond(w, r, status, checks)
}
