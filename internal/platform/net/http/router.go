// Package http is the HTTP seam modules mount against: a Router over chi, the server
// that runs it, and the JSON envelope helpers for probe endpoints
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is a plain handler func
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the subset of chi modules use. Route and Group hand the callback a Router
// scoped to the sub tree, so middleware added there stays there
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))
	Mux() http.Handler
}

// AdaptChi wraps a chi mux or sub router
func AdaptChi(r chi.Router) Router { return chiRouter{mux: r} }

type chiRouter struct{ mux chi.Router }

var _ Router = chiRouter{}

func (c chiRouter) Get(path string, h Handler) { c.mux.Get(path, h) }

func (c chiRouter) Post(path string, h Handler) { c.mux.Post(path, h) }

func (c chiRouter) Handle(path string, h http.Handler) { c.mux.Handle(path, h) }

func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) {
	if len(mw) > 0 {
		c.mux.Use(mw...)
	}
}

func (c chiRouter) Group(fn func(Router)) {
	c.mux.Group(func(sub chi.Router) { fn(AdaptChi(sub)) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.mux.Route(pattern, func(sub chi.Router) { fn(AdaptChi(sub)) })
}

// Mux returns the wrapped router; chi routers are http.Handlers
func (c chiRouter) Mux() http.Handler { return c.mux }
