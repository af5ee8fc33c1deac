package modkit

import (
	"net/http"
	"slices"
)

// Option adjusts how a module is built and mounted
type Option func(*Built)

// Built is what a module's New sees once every Option has run
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	// Ports holds whatever WithPorts injected; the receiving module asserts its own type
	Ports any
}

// WithName renames the module in logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module's routes under prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares wraps only this module's routes, in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts injects the ports a module consumes, e.g. a transport
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// Build applies opts in order. The middleware slice never aliases the caller's
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = slices.Clone(b.Mw)
	return b
}

// NameOr returns the configured name or def
func (b Built) NameOr(def string) string {
	if b.Name != "" {
		return b.Name
	}
	return def
}
