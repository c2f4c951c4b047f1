package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	handler := ratelimiter.Middleware(limiter, ratelimiter.ByClientIP())(okHandler())

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows within the limit", func(t *testing.T) {
		rec := send("192.0.2.1:1000")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

		assert.Equal(t, http.StatusOK, send("192.0.2.1:1001").Code)
	})

	t.Run("blocks over the limit", func(t *testing.T) {
		rec := send("192.0.2.1:1002")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("other clients are unaffected", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, send("192.0.2.2:1000").Code)
	})
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, ratelimiter.ErrStoreUnavailable
}

func TestMiddleware_StoreFailure(t *testing.T) {
	t.Parallel()

	var gotErr error
	handler := ratelimiter.Middleware(failingLimiter{}, ratelimiter.ByPath(),
		ratelimiter.WithResponder(func(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result, err error) {
			gotErr = err
			w.WriteHeader(http.StatusTeapot)
		}),
	)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, errors.Is(gotErr, ratelimiter.ErrStoreUnavailable))
}

func TestMiddleware_EmptyKeySkips(t *testing.T) {
	t.Parallel()

	handler := ratelimiter.Middleware(failingLimiter{}, func(*http.Request) string { return "" })(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestKeyFuncs(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/validate", nil)
	req.RemoteAddr = "192.0.2.1:1000"

	assert.Equal(t, "192.0.2.1", ratelimiter.ByClientIP()(req))
	assert.Equal(t, "POST /validate", ratelimiter.ByPath()(req))
	assert.Equal(t, "192.0.2.1:POST /validate", ratelimiter.Composite(ratelimiter.ByClientIP(), ratelimiter.ByPath())(req))

	ctxReq := req.WithContext(clientip.SetIPToContext(req.Context(), "203.0.113.1"))
	assert.Equal(t, "203.0.113.1", ratelimiter.ByClientIP()(ctxReq))

	long := func(*http.Request) string { return strings.Repeat("x", 100) }
	hashed := ratelimiter.Composite(long)(req)
	assert.LessOrEqual(t, len(hashed), 64)
	assert.Equal(t, hashed, ratelimiter.Composite(long)(req))

	assert.Empty(t, ratelimiter.Composite(func(*http.Request) string { return "" })(req))
}
