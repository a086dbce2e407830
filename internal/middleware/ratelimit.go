package middleware

import (
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"steeldash/internal/config"
	apierrors "steeldash/internal/errors"
)

// RateLimit applies a process-wide token bucket to the API. The
// dashboard serves a single interactive session, so one shared bucket
// is enough; a disabled config turns the middleware into a no-op.
func RateLimit(cfg config.RateLimitConfig) func(next http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				render.Render(w, r, apierrors.NewErrorResponse(
					apierrors.New(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded")))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
