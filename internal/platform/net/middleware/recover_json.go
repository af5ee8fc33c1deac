package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/logger"
)

// ErrorWriter renders err onto the response
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// Recover converts panics into a Panic-coded error rendered by write, and logs the stack
func Recover(write ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.C(r.Context()).Error().
					Interface("panic", v).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				write(w, r, perr.PanicErrf("panic recovered: %s", fmt.Sprint(v)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
