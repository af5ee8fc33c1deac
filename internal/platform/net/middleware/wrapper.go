// Package middleware adapts chi middleware and adds the in-house ones the stub server uses
package middleware

import (
	"net/http"
	"time"

	pnet "comprehend/internal/platform/net"
	pstrings "comprehend/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
	"github.com/google/uuid"
)

// HeaderRequestID is the response header carrying the request id
const HeaderRequestID = "X-Amzn-RequestId"

// RequestID reuses an inbound X-Amzn-RequestId or mints a UUID, stores it on the
// context and echoes it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(pnet.WithRequestID(r.Context(), id)))
		})
	}
}

// RealIP sets RemoteAddr from X-Forwarded-For / X-Real-IP
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// Heartbeat replies 200 to GET path, for load balancer checks
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// MaxBytes limits request bodies to n bytes
func MaxBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS wraps go-chi/cors with the JSON 1.1 headers allowed and the AWS ones exposed
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{
			"Content-Type",
			"X-Amz-Target",
			"X-Amz-Date",
			"Authorization",
			HeaderRequestID,
		}),
		ExposedHeaders: []string{HeaderRequestID, "X-Amzn-ErrorType"},
		MaxAge:         o.MaxAge,
	})
}
