package http

import (
	"net/http"
	"time"

	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const requestIDHeader = "X-Request-Id"

// requestIDMiddleware tags every request with an id, generating one when
// the caller did not supply it.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request with its routed path template and
// counts it per endpoint.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}
		metrics.IncHTTP(endpoint)

		next.ServeHTTP(w, r)

		logger.Debug("request handled",
			"method", r.Method,
			"endpoint", endpoint,
			"request_id", w.Header().Get(requestIDHeader),
			"duration", time.Since(start),
		)
	})
}
