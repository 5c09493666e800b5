package ratelimiter

import (
	"hash/fnv"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/authforms/pkg/clientip"
	"github.com/dmitrymomot/authforms/pkg/logger"
)

const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys on the address stored by clientip.Middleware, or the
// remote address when the middleware did not run.
func ByClientIP(r *http.Request) string {
	if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r, false)
}

// ByPath keys on the route, so each form gets its own bucket.
func ByPath(r *http.Request) string {
	return r.URL.Path
}

// Composite joins the non-empty keys of several functions. Keys over 64
// characters are hashed with FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// DenyHandler writes the response for a request over the limit.
type DenyHandler func(w http.ResponseWriter, r *http.Request, result *Result)

type middlewareConfig struct {
	deny   DenyHandler
	logger *slog.Logger
}

type MiddlewareOption func(*middlewareConfig)

func WithDenyHandler(h DenyHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.deny = h
		}
	}
}

func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func defaultDeny(w http.ResponseWriter, _ *http.Request, _ *Result) {
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

// Middleware takes one token per request and hands requests over the
// limit to the deny handler. Store failures let the request through.
func Middleware(b *Bucket, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{deny: defaultDeny, logger: logger.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			result, err := b.Allow(r.Context(), key)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "rate limit check failed",
					logger.Error(err),
					logger.Component("ratelimiter"),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				retry := int(math.Ceil(result.RetryAfter(time.Now()).Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(1, retry)))
				cfg.logger.WarnContext(r.Context(), "rate limited",
					slog.String("key", key),
					logger.Component("ratelimiter"),
				)
				cfg.deny(w, r, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
