// Package module wires the stub service, its stores and routes as a modkit.Module
package module

import (
	"context"
	"strings"

	"comprehend/internal/core/lexicon"
	"comprehend/internal/modkit"
	"comprehend/internal/modkit/repokit"
	phttp "comprehend/internal/platform/net/http"
	"comprehend/internal/platform/store"
	pstrings "comprehend/internal/platform/strings"
	"comprehend/internal/services/stub/domain"
	"comprehend/internal/services/stub/engine"
	stubhttp "comprehend/internal/services/stub/http"
	"comprehend/internal/services/stub/repo"
	"comprehend/internal/services/stub/service"
)

// Ports exported by the stub module
type Ports struct {
	Invoker domain.InvokerPort
	Sink    domain.InvocationSink
}

// Module implements modkit.Module for the stub
type Module struct {
	deps   modkit.Deps
	opts   Options
	built  modkit.Built
	ports  Ports
	sink   *repo.Sink
	checks map[string]store.Pinger
}

// New builds the stub. Records live in Postgres when deps.PG is set and in memory otherwise;
// calls are logged to ClickHouse when deps.CH is set
func New(ctx context.Context, deps modkit.Deps, mopts ...modkit.Option) (*Module, error) {
	opts := FromConfig(deps.Cfg)
	b := modkit.Build(mopts...)
	log := deps.Log.With().Str("module", b.NameOr("stub")).Logger()

	m := &Module{deps: deps, opts: opts, built: b, checks: map[string]store.Pinger{}}

	var records domain.RecordStore
	if deps.PG != nil {
		if p, ok := deps.PG.(store.Pinger); ok {
			if err := repokit.Ready(ctx, "postgres", p); err != nil {
				return nil, err
			}
			m.checks["postgres"] = p
		}
		if err := deps.PG.Tx(ctx, func(q repokit.Queryer) error { return repo.Migrate(ctx, q) }); err != nil {
			return nil, err
		}
		records = repo.NewPG().Bind(deps.PG)
	} else {
		records = repo.NewMemory()
	}

	var sink domain.InvocationSink = repo.Discard{}
	if deps.CH != nil {
		if p, ok := deps.CH.(store.Pinger); ok {
			if err := repokit.Ready(ctx, "clickhouse", p); err != nil {
				return nil, err
			}
			m.checks["clickhouse"] = p
		}
		if err := repo.EnsureInvocations(ctx, deps.CH); err != nil {
			return nil, err
		}
		m.sink = repo.NewSink(deps.CH, opts.InvocationBatch)
		sink = m.sink
	}

	var fx *service.Fixtures
	if opts.Fixtures != "" {
		f, err := service.LoadFixtures(opts.Fixtures)
		if err != nil {
			return nil, err
		}
		fx = f
	}

	lex, err := lexicon.Default()
	if err != nil {
		return nil, err
	}
	svc := service.New(records, engine.New(lex), fx, service.Config{
		Region:            opts.Region,
		Account:           opts.Account,
		Workers:           opts.Workers,
		JobPace:           opts.JobPace,
		MaxInFlight:       opts.MaxInFlight,
		MaxInferenceUnits: opts.MaxInferenceUnits,
	})
	if err := svc.Seed(ctx); err != nil {
		return nil, err
	}

	m.ports = Ports{Invoker: svc, Sink: sink}
	log.Info().
		Bool("postgres", deps.PG != nil).
		Bool("clickhouse", deps.CH != nil).
		Int("fixtures", svc.Fixtures.Len()).
		Dur("job_pace", opts.JobPace).
		Msg("stub ready")
	return m, nil
}

// Name returns the module name, "stub" unless overridden with modkit.WithName
func (m *Module) Name() string { return m.built.NameOr("stub") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Options returns the resolved options
func (m *Module) Options() Options { return m.opts }

// MountRoutes mounts the protocol endpoint and the probes, under the modkit.WithPrefix path
// and behind the modkit.WithMiddlewares chain when given
func (m *Module) MountRoutes(r phttp.Router) {
	d := stubhttp.Deps{
		Invoker: m.ports.Invoker,
		Sink:    m.ports.Sink,
		Checks:  m.checks,
	}
	mount := func(r phttp.Router) {
		r.Use(m.built.Mw...)
		stubhttp.Register(r, d)
	}
	if strings.Trim(m.built.Prefix, " /") == "" {
		r.Group(mount)
		return
	}
	r.Route(pstrings.MustPrefix(m.built.Prefix), mount)
}

// Run flushes the call log until ctx ends. It returns at once when ClickHouse is off
func (m *Module) Run(ctx context.Context) {
	if m.sink == nil {
		return
	}
	m.sink.Run(ctx, m.opts.InvocationFlush)
}
