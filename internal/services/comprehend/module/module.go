// Package module wires the Comprehend client from config and injected ports
package module

import (
	"comprehend/internal/adapters/transport/awsjson"
	"comprehend/internal/modkit"
	phttp "comprehend/internal/platform/net/http"
	"comprehend/internal/services/comprehend/domain"
	"comprehend/internal/services/comprehend/service"
)

// Ports exposed by the client module
type Ports struct {
	Client *service.Client
}

// Module implements the client module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New constructs the module. A domain.Ports passed with modkit.WithPorts supplies the transport;
// otherwise an unsigned JSON transport to Options.Endpoint is used
func New(deps modkit.Deps, mopts ...modkit.Option) (*Module, error) {
	opts := FromConfig(deps.Cfg)
	b := modkit.Build(mopts...)

	var tr domain.Transport
	if p, ok := b.Ports.(domain.Ports); ok && p.Transport != nil {
		tr = p.Transport
	} else {
		t, err := awsjson.New(awsjson.Config{Endpoint: opts.Endpoint, Timeout: opts.Timeout})
		if err != nil {
			return nil, err
		}
		tr = t
	}

	m := &Module{deps: deps, opts: opts}
	m.ports = Ports{Client: service.New(tr, service.Config{
		ValidateRequests:  opts.ValidateRequests,
		AllowUnknownEnums: opts.AllowUnknownEnums,
	})}
	deps.Log.Debug().
		Str("endpoint", opts.Endpoint).
		Bool("validate", opts.ValidateRequests).
		Bool("unknown_enums", opts.AllowUnknownEnums).
		Msg("comprehend client ready")
	return m, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "comprehend" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the resolved options
func (m *Module) Options() Options { return m.opts }

// MountRoutes satisfies modkit.Module; the client has no routes
func (m *Module) MountRoutes(phttp.Router) {}
