package middlewares

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
)

// Allower defines the minimal rate limiter interface needed by the middleware.
type Allower interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimitMiddleware returns a middleware that throttles requests per client
// IP. Gift card codes are guessable secrets, so the code-bearing endpoints
// are limited to `limit` requests per `window`.
//
// The limiter fails open: if the backing store is unreachable the request is
// let through, since losing rate limiting is preferable to refusing checkout.
func RateLimitMiddleware(limiter Allower, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			allowed, err := limiter.Allow(ctx, clientIP(r), limit, window)
			if err != nil {
				logger.Log.Errorw("rate limiter unavailable", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Log.Warnw("rate limit exceeded", "ip", clientIP(r), "uri", r.RequestURI)
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests. Please try again later.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the caller address, preferring the X-Forwarded-For header
// set by the reverse proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
