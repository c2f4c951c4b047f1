package ratelimiter

import (
	"hash/fnv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// maxKeyLength bounds storage keys; longer composites are hashed.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request. An empty key skips
// limiting for that request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the address stored by clientip.Middleware,
// falling back to resolving it from the request.
func ByClientIP(trustedHeaders ...string) KeyFunc {
	return func(r *http.Request) string {
		if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
			return ip
		}
		return clientip.GetIP(r, trustedHeaders...)
	}
}

// ByPath keys requests by method and path so each endpoint has its own bucket.
func ByPath() KeyFunc {
	return func(r *http.Request) string {
		return r.Method + " " + r.URL.Path
	}
}

// Composite joins the non-empty parts of several key functions with ":".
// Keys longer than maxKeyLength are replaced by their FNV-1a hash.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}

		h := fnv.New64a()
		h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// Responder writes the response for a denied or failed check. result is nil
// when err is set.
type Responder func(w http.ResponseWriter, r *http.Request, result *Result, err error)

type middlewareOptions struct {
	responder Responder
	logger    *slog.Logger
}

type MiddlewareOption func(*middlewareOptions)

func WithResponder(fn Responder) MiddlewareOption {
	return func(o *middlewareOptions) {
		if fn != nil {
			o.responder = fn
		}
	}
}

func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(o *middlewareOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultResponder(w http.ResponseWriter, _ *http.Request, _ *Result, err error) {
	if err != nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

// Middleware enforces limiter per key and sets the X-RateLimit-* headers.
// Denied requests get Retry-After and the responder's output.
func Middleware(limiter Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := &middlewareOptions{
		responder: defaultResponder,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				o.logger.ErrorContext(r.Context(), "rate limit check failed",
					logger.Component("ratelimiter"),
					logger.Error(err),
				)
				o.responder(w, r, nil, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				retryAfter := int(result.RetryAfter().Round(time.Second).Seconds())
				h.Set("Retry-After", strconv.Itoa(max(1, retryAfter)))

				o.logger.WarnContext(r.Context(), "rate limit exceeded",
					logger.Component("ratelimiter"),
					logger.ClientIP(clientip.GetIPFromContext(r.Context())),
				)
				o.responder(w, r, result, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
