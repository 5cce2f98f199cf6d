package http

import (
	"log/slog"
	"net/http"
)

type RouterDeps struct {
	Growth  *GrowthHandler
	Clock   *ClockHandler
	Limiter *RateLimiter
	Logger  *slog.Logger
}

// NewRouter mounts every endpoint. Rate limiting applies to the computing
// endpoints, not to the health check.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		if deps.Limiter == nil {
			return h
		}
		return RateLimitMiddleware(deps.Limiter, deps.Logger, h)
	}

	mux.Handle("/growth/project", limited(deps.Growth.Project))
	if deps.Clock != nil {
		mux.Handle("/clock", limited(deps.Clock.Now))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return RequestIDMiddleware(deps.Logger, mux)
}
